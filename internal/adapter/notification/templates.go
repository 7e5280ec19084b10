package notification

import (
	"bytes"
	"html/template"
	"strings"
)

var paymentConfirmedTmpl = template.Must(template.New("payment_confirmed").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<div style="background-color: rgb(249, 115, 22); color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0;">
<h1>Pembayaran Berhasil</h1>
</div>
<div style="background-color: white; padding: 20px; border-radius: 0 0 5px 5px;">
<p>Halo {{.UserName}},</p>
<p>Pembayaran Anda untuk event <strong>{{.EventTitle}}</strong> telah kami konfirmasi.</p>
<p>Anda telah terdaftar sebagai peserta event.</p>
<ul>
<li>Nama Event: {{.EventTitle}}</li>
<li>Jadwal: {{.StartsAt}}</li>
<li>Lokasi: {{.Location}}</li>
<li>Jumlah Dibayar: Rp {{.Amount}}</li>
<li>Tanggal Konfirmasi: {{.ConfirmedAt}}</li>
</ul>
<p>Terima kasih atas partisipasi Anda!</p>
</div>
</div>
</body>
</html>`))

type paymentConfirmedData struct {
	UserName    string
	EventTitle  string
	StartsAt    string
	Location    string
	Amount      string
	ConfirmedAt string
}

// render executes tmpl and drops newlines, which the gateway rejects in
// HTML bodies.
func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.ReplaceAll(buf.String(), "\n", ""), nil
}
