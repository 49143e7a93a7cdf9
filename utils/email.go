package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strconv"

	"quentinhas/config"
	"quentinhas/model"

	"gopkg.in/gomail.v2"
)

var closingReportTmpl = template.Must(template.New("closing").Funcs(template.FuncMap{
	"br": ISOToBR,
}).Parse(`<h2>Fechamento de Caixa - {{br .Date}}</h2>
<p><b>Pedidos aprovados:</b> {{.Orders}}</p>
<p><b>Total Arrecadado:</b> R$ {{.Total.StringFixed 2}}</p>
<h3>Resumo por Item Vendido</h3>
<ul>{{range .Items}}<li>{{.Name}}: {{.Units}} unidades</li>{{end}}</ul>
<h3>Totais por forma de pagamento</h3>
<ul>{{range .ByPayment}}<li>{{.Method}}: R$ {{.Total.StringFixed 2}} ({{.Count}} pedido(s))</li>{{end}}</ul>
{{if .Warnings}}<h3>Avisos</h3><ul>{{range .Warnings}}<li>Pedido #{{.OrderID}}: {{.Token}}</li>{{end}}</ul>{{end}}`))

// SMTPConfigured reports whether enough SMTP settings exist to send mail.
func SMTPConfigured() bool {
	return config.Config("SMTP_HOST") != "" && config.Config("SMTP_FROM") != ""
}

func RenderClosingReport(report model.DailyReport) (string, error) {
	var body bytes.Buffer
	if err := closingReportTmpl.Execute(&body, report); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendClosingReportEmail mails the day's closing report to the admin.
func SendClosingReportEmail(to string, report model.DailyReport) error {
	body, err := RenderClosingReport(report)
	if err != nil {
		return fmt.Errorf("render closing report: %w", err)
	}

	port, err := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Fechamento de Caixa "+ISOToBR(report.Date))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Config("SMTP_HOST"), port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		return err
	}
	log.Printf("Closing report for %s sent to %s", report.Date, to)
	return nil
}
