package autostart

import "fmt"

// desktopEntry renders the XDG autostart .desktop file contents.
func desktopEntry(command string) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
Comment=Hydration reminder overlay
X-GNOME-Autostart-enabled=true
`, AppName, command)
}

// launchAgentPlist renders the macOS LaunchAgent property list.
func launchAgentPlist(label, executable string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, label, executable)
}
