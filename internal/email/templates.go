// internal/email/templates.go
package email

import "fmt"

// FormatPriceCents renders an integer cent amount as a two-decimal
// string. Money never passes through binary floats.
func FormatPriceCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// ReservationConfirmed is sent after a payment callback marks a
// reservation paid.
func ReservationConfirmed(clientName, courtName, date string, hour, priceCents int64) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Reservation confirmed: %s %s %02d:00", courtName, date, hour)
	textBody = fmt.Sprintf(
		"Hi %s,\n\nYour reservation is confirmed.\n\nCourt: %s\nDate: %s\nTime: %02d:00\nAmount paid: %s\n\nSee you on the court!\n",
		clientName, courtName, date, hour, FormatPriceCents(priceCents),
	)
	htmlBody = fmt.Sprintf(
		`<p>Hi %s,</p><p>Your reservation is confirmed.</p><ul><li>Court: %s</li><li>Date: %s</li><li>Time: %02d:00</li><li>Amount paid: %s</li></ul><p>See you on the court!</p>`,
		clientName, courtName, date, hour, FormatPriceCents(priceCents),
	)
	return subject, htmlBody, textBody
}

// SlotFreed offers a just-cancelled paid slot to a member, with a
// single-use rebooking link.
func SlotFreed(memberName, courtName, date string, hour int64, link string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("A court just opened up: %s %s %02d:00", courtName, date, hour)
	textBody = fmt.Sprintf(
		"Hi %s,\n\nA reservation was just cancelled and the slot is open:\n\nCourt: %s\nDate: %s\nTime: %02d:00\n\nGrab it here (first come, first served):\n%s\n",
		memberName, courtName, date, hour, link,
	)
	htmlBody = fmt.Sprintf(
		`<p>Hi %s,</p><p>A reservation was just cancelled and the slot is open:</p><ul><li>Court: %s</li><li>Date: %s</li><li>Time: %02d:00</li></ul><p><a href="%s">Grab it here</a> (first come, first served).</p>`,
		memberName, courtName, date, hour, link,
	)
	return subject, htmlBody, textBody
}

// DuesNotice announces a newly emitted monthly dues period to the
// household head.
func DuesNotice(headName string, month, year, totalCents int64, dueOn string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Club dues %02d/%d", month, year)
	textBody = fmt.Sprintf(
		"Hi %s,\n\nYour household dues for %02d/%d have been issued.\n\nTotal: %s\nDue by: %s\n\nInterest accrues monthly after the due date.\n",
		headName, month, year, FormatPriceCents(totalCents), dueOn,
	)
	htmlBody = fmt.Sprintf(
		`<p>Hi %s,</p><p>Your household dues for %02d/%d have been issued.</p><ul><li>Total: %s</li><li>Due by: %s</li></ul><p>Interest accrues monthly after the due date.</p>`,
		headName, month, year, FormatPriceCents(totalCents), dueOn,
	)
	return subject, htmlBody, textBody
}
