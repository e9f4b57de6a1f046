package notification

import (
	"bytes"
	"html/template"

	"github.com/teusdrz/firemoto/models"
)

const bookingEmailHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #1a1a1a; color: #fff; padding: 30px;">
    <h1 style="color: #DC2626; border-bottom: 2px solid #DC2626; padding-bottom: 10px;">&#128295; Novo Agendamento - Fire Moto</h1>
    <div style="background: #2a2a2a; padding: 20px; border-radius: 8px; margin-top: 20px;">
        <h2 style="color: #DC2626; margin-top: 0;">Dados do Cliente</h2>
        <p><strong>Nome:</strong> {{.Name}}</p>
        <p><strong>Telefone:</strong> {{.Phone}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
    </div>
    <div style="background: #2a2a2a; padding: 20px; border-radius: 8px; margin-top: 20px;">
        <h2 style="color: #DC2626; margin-top: 0;">Dados do Ve&iacute;culo</h2>
        <p><strong>Marca:</strong> {{.VehicleBrand}}</p>
        <p><strong>Modelo:</strong> {{.VehicleModel}}</p>
        <p><strong>Ano:</strong> {{.VehicleYear}}</p>
    </div>
    <div style="background: #2a2a2a; padding: 20px; border-radius: 8px; margin-top: 20px;">
        <h2 style="color: #DC2626; margin-top: 0;">Servi&ccedil;o Solicitado</h2>
        <p><strong>Tipo:</strong> {{.ServiceType}}</p>
        <p><strong>Data Preferida:</strong> {{.PreferredDate}}</p>
        <p><strong>Hor&aacute;rio:</strong> {{.PreferredTime}}</p>
        {{if .Message}}<p><strong>Observa&ccedil;&otilde;es:</strong> {{.Message}}</p>{{end}}
    </div>
    <p style="color: #888; font-size: 12px; margin-top: 30px; text-align: center;">
        Este email foi enviado automaticamente pelo sistema Fire Moto
    </p>
</div>
`

var bookingEmailTmpl = template.Must(template.New("bookingEmail").Parse(bookingEmailHTML))

// renderBookingEmail renders the notification body for one booking.
func renderBookingEmail(booking models.Booking) (string, error) {
	var body bytes.Buffer
	if err := bookingEmailTmpl.Execute(&body, booking); err != nil {
		return "", err
	}
	return body.String(), nil
}
