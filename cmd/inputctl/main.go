// inputctl - Command-line client for the inputd daemon
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"inputd/internal/automation"
	"inputd/internal/config"
	"inputd/internal/ipc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "type":
		err = cmdType(args)
	case "press":
		err = cmdPress(args)
	case "seq":
		err = cmdSeq(args)
	case "layout":
		err = cmdLayout(args)
	case "move":
		err = cmdMove(args)
	case "click":
		err = cmdClick(args)
	case "drag":
		err = cmdDrag(args)
	case "size":
		err = cmdSize(args)
	case "status":
		err = cmdStatus(args)
	case "stop":
		err = cmdStop(args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "inputctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`inputctl - Control the inputd synthetic input daemon

USAGE:
    inputctl <command> [options] [args]

COMMANDS:
    type <text>            Type text into the focused application
    press <key> [key...]   Press a key or hotkey combination
    seq <key> [key...]     Press keys one after another
    layout                 Describe the active keyboard layout
    move <x> <y>           Move the mouse cursor
    click                  Click a mouse button
    drag <x> <y>           Drag to coordinates with a button held
    size                   Print the primary screen size
    status                 Show daemon status
    stop                   Ask the daemon to shut down
    help                   Show this help message

COMMON OPTIONS:
    -socket <path>         Daemon socket path
    -interval <ms>         Pause between input events (type, press, seq)

EXAMPLES:
    inputctl type "hello, world"
    inputctl press ctrl shift p
    inputctl press enter
    inputctl seq tab tab enter
    inputctl layout`)
}

// commonFlags returns a flag set with the options every command shares.
func commonFlags(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	socket := fs.String("socket", "", "daemon socket path")
	return fs, socket
}

func connect(socket string) (*ipc.Client, error) {
	cfg := ipc.ClientConfig{SocketPath: socket, Addr: socket}
	if socket == "" {
		defaults := config.DefaultConfig()
		cfg.SocketPath = defaults.IPC.Socket
		cfg.Addr = defaults.IPC.ListenAddr
	}

	client := ipc.NewClient(cfg)
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("%w (is inputd running?)", err)
	}
	return client, nil
}

// report prints an operation response and fails on error status.
func report(op *ipc.OpResponse) error {
	fmt.Println(op.Summary)
	if op.Status != automation.StatusSuccess {
		return fmt.Errorf("operation reported %s status", op.Status)
	}
	return nil
}

func cmdType(args []string) error {
	fs, socket := commonFlags("type")
	intervalMs := fs.Int("interval", 0, "pause between characters in milliseconds")
	enter := fs.Bool("enter", false, "press enter after typing")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: inputctl type [options] <text>")
	}
	text := strings.Join(fs.Args(), " ")

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	op, err := client.TypeText(text, time.Duration(*intervalMs)*time.Millisecond, *enter)
	if err != nil {
		return err
	}
	return report(op)
}

func cmdPress(args []string) error {
	fs, socket := commonFlags("press")
	intervalMs := fs.Int("interval", 0, "pause between key events in milliseconds")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: inputctl press [options] <key> [key...]")
	}

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	op, err := client.PressHotkey(fs.Args(), time.Duration(*intervalMs)*time.Millisecond)
	if err != nil {
		return err
	}
	return report(op)
}

func cmdSeq(args []string) error {
	fs, socket := commonFlags("seq")
	intervalMs := fs.Int("interval", 0, "pause between key presses in milliseconds")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: inputctl seq [options] <key> [key...]")
	}

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	op, err := client.PressSequence(fs.Args(), time.Duration(*intervalMs)*time.Millisecond)
	if err != nil {
		return err
	}
	return report(op)
}

func cmdLayout(args []string) error {
	fs, socket := commonFlags("layout")
	fs.Parse(args)

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	op, err := client.Layout()
	if err != nil {
		return err
	}
	fmt.Println(op.Summary)
	if op.Status != automation.StatusSuccess {
		os.Exit(2)
	}
	return nil
}

func parseCoords(fs *flag.FlagSet) (int, int, error) {
	if fs.NArg() != 2 {
		return 0, 0, fmt.Errorf("expected <x> <y> arguments")
	}
	x, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate: %s", fs.Arg(0))
	}
	y, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate: %s", fs.Arg(1))
	}
	return x, y, nil
}

func cmdMove(args []string) error {
	fs, socket := commonFlags("move")
	fs.Parse(args)

	x, y, err := parseCoords(fs)
	if err != nil {
		return err
	}

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	op, err := client.MoveCursor(x, y)
	if err != nil {
		return err
	}
	return report(op)
}

func cmdClick(args []string) error {
	fs, socket := commonFlags("click")
	button := fs.String("button", "left", "mouse button: left, right, center")
	double := fs.Bool("double", false, "double-click")
	fs.Parse(args)

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	op, err := client.Click(*button, *double)
	if err != nil {
		return err
	}
	return report(op)
}

func cmdDrag(args []string) error {
	fs, socket := commonFlags("drag")
	button := fs.String("button", "left", "mouse button to hold")
	fs.Parse(args)

	x, y, err := parseCoords(fs)
	if err != nil {
		return err
	}

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	op, err := client.Drag(x, y, *button)
	if err != nil {
		return err
	}
	return report(op)
}

func cmdSize(args []string) error {
	fs, socket := commonFlags("size")
	fs.Parse(args)

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	op, err := client.ScreenSize()
	if err != nil {
		return err
	}
	return report(op)
}

func cmdStatus(args []string) error {
	fs, socket := commonFlags("status")
	fs.Parse(args)

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	status, err := client.Status()
	if err != nil {
		return err
	}

	fmt.Printf("inputd %s on %s\n", status.Version, status.Platform)
	fmt.Printf("  started:    %s\n", status.StartedAt.Format(time.RFC3339))
	fmt.Printf("  uptime:     %s\n", status.Uptime.Round(time.Second))
	fmt.Printf("  fail-safe:  %v\n", status.FailSafe)
	if len(status.Strategies) > 0 {
		fmt.Printf("  strategies: %s\n", strings.Join(status.Strategies, " > "))
	}
	return nil
}

func cmdStop(args []string) error {
	fs, socket := commonFlags("stop")
	fs.Parse(args)

	client, err := connect(*socket)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Shutdown(); err != nil {
		return err
	}
	fmt.Println("Shutdown requested.")
	return nil
}
