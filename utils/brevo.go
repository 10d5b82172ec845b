package utils

import (
	"bytes"
	"errors"
	"os"
	"text/template"

	brevo "github.com/sendinblue/APIv3-go-library/v2/lib"
)

const registerTemplate = `
<html>
  <body>
    <h2>Welcome to TaxiBook, {{.Name}}!</h2>
    <p>Your account ({{.Email}}) is ready. Book your first trip whenever you like.</p>
  </body>
</html>
`

// SendRegisterNotification sends the welcome email after a customer is
// created. The caller decides what to do with a failure; registration itself
// never depends on it.
func SendRegisterNotification(email, name string) error {
	apiKey := os.Getenv("BREVO_API_KEY")
	if apiKey == "" {
		return errors.New("brevo API Key not found in environment")
	}

	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)
	client := brevo.NewAPIClient(cfg)

	tmpl, err := template.New("registerTemplate").Parse(registerTemplate)
	if err != nil {
		return err
	}

	var bodyContent bytes.Buffer
	if err := tmpl.Execute(&bodyContent, map[string]interface{}{
		"Name":  name,
		"Email": email,
	}); err != nil {
		return err
	}

	sender := &brevo.SendSmtpEmailSender{
		Name:  "TaxiBook Team",
		Email: "bot.taxibook@outlook.com",
	}

	to := []brevo.SendSmtpEmailTo{
		{Name: name, Email: email},
	}

	emailRequest := &brevo.SendSmtpEmail{
		Sender:      sender,
		To:          to,
		Subject:     "Welcome to TaxiBook!",
		HtmlContent: bodyContent.String(),
	}

	_, _, err = client.TransactionalEmailsApi.SendTransacEmail(nil, *emailRequest)
	return err
}
