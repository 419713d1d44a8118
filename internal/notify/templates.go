package notify

import (
	"bytes"
	"html/template"
)

const (
	SubjectRegistration = "📢 Importante: Registro de Asistencia con código QR"
	SubjectProgress     = "📊 Tu avance de asistencia del semestre"
)

var registrationTmpl = template.Must(template.New("registration").Parse(`
<html>
<body style="font-family: Manrope, sans-serif; color: #333;">
    <h2 style="color: #412263;">✨ ¡Gracias por ser parte de la fraternidad! ✨</h2>
    <p>Querido/a <b>{{.Name}}</b>,</p>

    <p>Nos llena de alegría contar contigo en el comité <b>{{.Committee}}</b>. Tu apoyo es <i>clave</i> para el éxito del evento.</p>

    {{if .WhatsAppLink}}
    <p><b>Recuerda ingresar al grupo de WhatsApp de tu comité:</b> <a href="{{.WhatsAppLink}}">Click aquí</a></p>
    {{else}}
    <p><b>Recuerda preguntar por el grupo de WhatsApp de tu comité en caso de que haya uno disponible.</b></p>
    {{end}}

    <h3>🛑 Importante: Registro de Asistencia con código QR</h3>
    <p>Para optimizar tiempos, utilizaremos <b>códigos QR</b> para la toma de asistencia.</p>
    <ul>
        <li>Dirígete a la mesa de registro con la imagen adjunta de tu QR.</li>
        <li>Escanea tu <b>check-in</b> y <b>check-out</b> para contar tus horas.</li>
        <li>Si no haces <b>check-out</b>, las horas <u>no serán contabilizadas</u>.</li>
    </ul>

    <p><b>Tu código QR es único e individual y no deberá ser compartido con los demás.</b> Es tu responsabilidad tu toma de asistencia.</p>

    <h3>⏳ Horarios Flexibles</h3>
    <p>Puedes venir en diferentes momentos del día. Deberás realizar check-in y check-out en cada ocasión para que sea contabilizada.</p>

    <p>Nos sentimos <b>afortunados</b> de que seas parte de la fraternidad. 💜</p>
</body>
</html>
`))

var progressTmpl = template.Must(template.New("progress").Parse(`
<html>
<body style="font-family: Manrope, sans-serif; color: #333;">
    <h2 style="color: #412263;">📊 Seguimiento de Asistencia</h2>
    <p>Querido/a <b>{{.Name}}</b>,</p>

    <p>Este es tu avance de asistencia del semestre. El mínimo requerido para tu semestre es <b>{{printf "%.0f" .RequiredPct}}%</b>.</p>

    <table>
        <tr>
            <td align="center"><img src="cid:{{.CurrentCID}}" alt="Asistencia actual"><br><b>Asistencia Actual</b></td>
            <td align="center"><img src="cid:{{.TotalCID}}" alt="Asistencia total"><br><b>Asistencia Total</b></td>
        </tr>
    </table>

    <p><b>Justificaciones usadas</b> (máximo {{.MaxJustifications}} por semestre):</p>
    <img src="cid:{{.BarCID}}" alt="Justificaciones usadas">

    <p>En caso de algún error o comentario, favor de notificarlo por este medio.</p>
</body>
</html>
`))

// RegistrationData fills the registration mail template.
type RegistrationData struct {
	Name         string
	Committee    string
	WhatsAppLink string
}

// ProgressData fills the progress mail template. The CIDs reference the
// embedded chart images by filename.
type ProgressData struct {
	Name              string
	RequiredPct       float64
	MaxJustifications int
	CurrentCID        string
	TotalCID          string
	BarCID            string
}

func RenderRegistration(data RegistrationData) (string, error) {
	var buf bytes.Buffer
	if err := registrationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderProgress(data ProgressData) (string, error) {
	var buf bytes.Buffer
	if err := progressTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
