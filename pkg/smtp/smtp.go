package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendDistressAlert(userID string, excerpt string) error
	Configured() bool
}

type smtp struct {
	auth        smtpPkg.Auth
	mail        string
	supportMail string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	supportMail := os.Getenv("SUPPORT_ALERT_MAIL")
	auth := smtpPkg.PlainAuth("", mail, password, "smtp.gmail.com")

	return &smtp{auth: auth, mail: mail, supportMail: supportMail}
}

func (s *smtp) Configured() bool {
	return s.mail != "" && s.supportMail != ""
}

// SendDistressAlert notifies the support inbox that a user's feedback chat
// was classified as distressed. The excerpt is the user's last message.
func (s *smtp) SendDistressAlert(userID string, excerpt string) error {
	to := []string{s.supportMail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Distress signal from user %s\r\n\r\nA feedback-chat message from user %s was classified as distressed. Last message:\r\n\r\n%s\r\n",
		s.supportMail, userID, userID, excerpt))

	if err := smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
