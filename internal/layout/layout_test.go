package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hitoolboxWithLayout = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>AppleSelectedInputSources</key>
	<array>
		<dict>
			<key>InputSourceKind</key>
			<string>Keyboard Layout</string>
			<key>InputSourceID</key>
			<string>com.apple.keylayout.German</string>
			<key>KeyboardLayout ID</key>
			<integer>3</integer>
			<key>KeyboardLayout Name</key>
			<string>German</string>
			<key>KeyboardLayout Script</key>
			<string>Latin</string>
			<key>Languages</key>
			<array>
				<string>de</string>
				<string>de-CH</string>
			</array>
		</dict>
		<dict>
			<key>Bundle ID</key>
			<string>com.apple.CharacterPaletteIM</string>
			<key>InputSourceKind</key>
			<string>Non Keyboard Input Method</string>
		</dict>
	</array>
</dict>
</plist>`

const hitoolboxInputMethodOnly = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>AppleSelectedInputSources</key>
	<array>
		<dict>
			<key>Bundle ID</key>
			<string>com.apple.inputmethod.Kotoeri</string>
			<key>Input Mode</key>
			<string>com.apple.inputmethod.Japanese</string>
			<key>InputSourceKind</key>
			<string>Input Mode</string>
		</dict>
	</array>
</dict>
</plist>`

func TestParseSelectedInputSourcesPrefersKeyboardLayout(t *testing.T) {
	info, err := parseSelectedInputSources([]byte(hitoolboxWithLayout))
	require.NoError(t, err)

	assert.Equal(t, "darwin", info.Platform)
	assert.Equal(t, "German", info.Get("layout"))
	assert.Equal(t, "3", info.Get("layout_id"))
	assert.Equal(t, "Latin", info.Get("script"))
	assert.Equal(t, "de,de-CH", info.Get("languages"))
	assert.Equal(t, "com.apple.keylayout.German", info.Get("input_source_id"))
	assert.Equal(t, "Keyboard Layout", info.Get("kind"))
}

const hitoolboxLocalizedName = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>AppleCurrentKeyboardLayoutInputSourceID</key>
	<string>com.apple.keylayout.US</string>
	<key>AppleSelectedInputSources</key>
	<array>
		<dict>
			<key>InputSourceKind</key>
			<string>Keyboard Layout</string>
			<key>Localized Name</key>
			<string>U.S.</string>
			<key>Language</key>
			<string>en</string>
		</dict>
	</array>
</dict>
</plist>`

func TestParseSelectedInputSourcesFallbackAttributes(t *testing.T) {
	info, err := parseSelectedInputSources([]byte(hitoolboxLocalizedName))
	require.NoError(t, err)

	assert.Equal(t, "U.S.", info.Get("layout"))
	assert.Equal(t, "en", info.Get("languages"))
	assert.Equal(t, "com.apple.keylayout.US", info.Get("input_source_id"))
}

func TestParseSelectedInputSourcesFallsBackToLastEntry(t *testing.T) {
	info, err := parseSelectedInputSources([]byte(hitoolboxInputMethodOnly))
	require.NoError(t, err)

	assert.Equal(t, "com.apple.inputmethod.Japanese", info.Get("input_mode"))
	assert.Equal(t, "Input Mode", info.Get("kind"))
	assert.Equal(t, "com.apple.inputmethod.Kotoeri", info.Get("bundle"))
}

func TestParseSelectedInputSourcesRejectsGarbage(t *testing.T) {
	_, err := parseSelectedInputSources([]byte("not a plist"))
	assert.Error(t, err)

	_, err = parseSelectedInputSources([]byte(`<?xml version="1.0"?><plist version="1.0"><dict/></plist>`))
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestParseXKBQuery(t *testing.T) {
	out := []byte("rules:      evdev\nmodel:      pc105\nlayout:     us,de\nvariant:    ,nodeadkeys\n")

	fields := parseXKBQuery(out)
	require.Len(t, fields, 4)
	assert.Equal(t, Field{"rules", "evdev"}, fields[0])
	assert.Equal(t, Field{"layout", "us,de"}, fields[2])
	assert.Equal(t, Field{"variant", ",nodeadkeys"}, fields[3])
}

func TestParseXKBQuerySkipsMalformedLines(t *testing.T) {
	fields := parseXKBQuery([]byte("no separator here\nlayout: us\n: empty key\n"))
	require.Len(t, fields, 1)
	assert.Equal(t, Field{"layout", "us"}, fields[0])
}

func TestLocaleForLangID(t *testing.T) {
	assert.Equal(t, "en_US", localeForLangID(0x0409))
	assert.Equal(t, "de_DE", localeForLangID(0x0407))
	assert.Equal(t, "en_GB", localeForLangID(0x0809))
	assert.Equal(t, "0x7F99", localeForLangID(0x7F99))
}

func TestLayoutCodeForLocale(t *testing.T) {
	assert.Equal(t, "EN", layoutCodeForLocale("en_US"))
	assert.Equal(t, "DE", layoutCodeForLocale("de_CH"))
	assert.Equal(t, "ZH", layoutCodeForLocale("zh_TW"))
	assert.Equal(t, "0x7F99", layoutCodeForLocale("0x7F99"))
}

func TestInfoSummary(t *testing.T) {
	info := Info{
		Platform: "linux",
		Fields:   []Field{{"layout", "us"}, {"variant", "dvorak"}},
	}
	assert.Equal(t, "layout=us; variant=dvorak", info.Summary())
	assert.Equal(t, "dvorak", info.Get("variant"))
	assert.Equal(t, "", info.Get("model"))
}
