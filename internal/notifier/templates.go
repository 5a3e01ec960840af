package notifier

import "html/template"

// Email bodies mirror the hotel's transactional email layout: a heading,
// a grey details card and the front desk contact block.

const emailFooter = `
  <p>If you have any questions, please contact us:</p>
  <p>Phone: {{.Hotel.ContactPhone}}</p>
  <p>Email: {{.Hotel.ContactEmail}}</p>
  <p>Best regards,<br />{{.Hotel.Name}} Team</p>
  <hr />
  <p style="font-size: 12px; color: #666;">This is an automated email, please do not reply to this message.</p>
</div>`

var bookingConfirmedTemplate = template.Must(template.New("booking_confirmed").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B4513;">{{.Hotel.Name}} - Booking Confirmation</h2>
  <p>Dear {{.Event.GuestName}},</p>
  <p>Thank you for choosing {{.Hotel.Name}} for your upcoming stay. We are pleased to confirm your booking.</p>
  <div style="background-color: #f7f7f7; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Booking Details:</h3>
    <p><strong>Booking Reference:</strong> {{.Event.ReferenceCode}}</p>
    <p><strong>Check-in Date:</strong> {{.Event.CheckIn}}</p>
    <p><strong>Check-out Date:</strong> {{.Event.CheckOut}}</p>
    <p><strong>Room:</strong> {{.Event.RoomNumber}} ({{.Event.RoomTypeName}})</p>
    <p><strong>Total Amount:</strong> {{.Hotel.Currency}} {{printf "%.2f" .Event.TotalAmount}}</p>
  </div>
  <p>We look forward to welcoming you to {{.Hotel.Name}}!</p>` + emailFooter))

var bookingCancelledTemplate = template.Must(template.New("booking_cancelled").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B4513;">{{.Hotel.Name}} - Booking Cancelled</h2>
  <p>Dear {{.Event.GuestName}},</p>
  <p>Your booking has been cancelled. We hope to welcome you another time.</p>
  <div style="background-color: #f7f7f7; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Booking Details:</h3>
    <p><strong>Booking Reference:</strong> {{.Event.ReferenceCode}}</p>
    <p><strong>Check-in Date:</strong> {{.Event.CheckIn}}</p>
    <p><strong>Check-out Date:</strong> {{.Event.CheckOut}}</p>
    <p><strong>Room:</strong> {{.Event.RoomNumber}} ({{.Event.RoomTypeName}})</p>
  </div>` + emailFooter))

var bookingCompletedTemplate = template.Must(template.New("booking_completed").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B4513;">{{.Hotel.Name}} - Thank You For Your Stay</h2>
  <p>Dear {{.Event.GuestName}},</p>
  <p>Thank you for staying with us. We hope you enjoyed your visit and look forward to seeing you again.</p>
  <div style="background-color: #f7f7f7; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Booking Details:</h3>
    <p><strong>Booking Reference:</strong> {{.Event.ReferenceCode}}</p>
    <p><strong>Check-in Date:</strong> {{.Event.CheckIn}}</p>
    <p><strong>Check-out Date:</strong> {{.Event.CheckOut}}</p>
  </div>` + emailFooter))

var paymentReceiptTemplate = template.Must(template.New("payment_receipt").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B4513;">{{.Hotel.Name}} - Payment Receipt</h2>
  <p>Dear {{.Event.GuestName}},</p>
  <p>Thank you for your payment. Below is your receipt.</p>
  <div style="background-color: #f7f7f7; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Payment Details:</h3>
    <p><strong>Transaction ID:</strong> {{.Event.TransactionID}}</p>
    <p><strong>Booking Reference:</strong> {{.Event.ReferenceCode}}</p>
    <p><strong>Amount Paid:</strong> {{.Hotel.Currency}} {{printf "%.2f" .Event.TotalAmount}}</p>
    <p><strong>Payment Method:</strong> {{.Event.Method}}</p>
  </div>
  <p>Thank you for choosing {{.Hotel.Name}}!</p>` + emailFooter))

var contactReceivedTemplate = template.Must(template.New("contact_received").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B4513;">New Contact Form Submission</h2>
  <div style="background-color: #f7f7f7; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Event.GuestName}}</p>
    <p><strong>Email:</strong> {{.Event.GuestEmail}}</p>
    <p><strong>Subject:</strong> {{.Event.Subject}}</p>
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-line;">{{.Event.Message}}</p>
  </div>
  <p>This message was sent from the contact form on the {{.Hotel.Name}} website.</p>
  <hr />
  <p style="font-size: 12px; color: #666;">This is an automated email.</p>
</div>`))
