// Package notify sends system notifications when the overlay cannot.
package notify

import (
	"log"
	"os"

	"github.com/gen2brain/beeep"

	"github.com/hydrate-app/hydrate/internal/models"
)

const appName = "Hydrate"

func init() {
	beeep.AppName = appName
}

// Reminder sends the reminder as a system notification. Used when the
// fallback is enabled and the overlay could not be shown.
func Reminder(settings *models.Settings, iconPath string) {
	if !settings.NotifyFallback {
		return
	}

	title := settings.TitleText
	message := models.ExpandTemplate(settings.MessageTemplate, "interval",
		models.FormatInterval(settings.ReminderInterval()))

	if err := beeep.Notify(title, message, iconPath); err != nil {
		log.Printf("Warning: notification failed: %v", err)
	}
}

// Fatal shows a blocking alert for errors that prevent startup (such as
// no writable settings directory) and exits. The alert is best effort; the
// message always reaches stderr.
func Fatal(message string) {
	log.Printf("Fatal: %s", message)
	_ = beeep.Alert(appName, message, "")
	os.Exit(1)
}
