package views

import (
	"fmt"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/internal/session"
)

// Pay processes a payment for an order.
func (v *Views) Pay(req models.PaymentRequest) {
	if !v.gate() {
		return
	}

	payment, err := v.payments.Process(req)
	if err != nil {
		v.renderError(err)
		return
	}

	v.notify.Add(fmt.Sprintf("Payment of %s for order #%d is %s.",
		money(payment.Amount), payment.OrderID, payment.Status))
	fmt.Fprintf(v.out, "Payment #%d for order #%d: %s (%s via %s)\n",
		payment.ID, payment.OrderID, payment.Status, money(payment.Amount), payment.PaymentMethod)
}

// MyPayments is the student's payment history.
func (v *Views) MyPayments() {
	if !v.gate() {
		return
	}

	payments, err := v.payments.My()
	if err != nil {
		v.renderError(err)
		return
	}
	v.paymentTable(payments, false)
}

// MyPayment shows one of the student's own payments.
func (v *Views) MyPayment(id int64) {
	if !v.gate() {
		return
	}

	p, err := v.payments.MyByID(id)
	if err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintf(v.out, "Payment #%d  order #%d  %s  %s  via %s  on %s\n",
		p.ID, p.OrderID, p.Status, money(p.Amount), p.PaymentMethod, when(p.PaymentDate))
}

// AllPayments is the admin's payment ledger.
func (v *Views) AllPayments() {
	if !v.gate(session.RoleAdmin) {
		return
	}

	payments, err := v.payments.All()
	if err != nil {
		v.renderError(err)
		return
	}
	v.paymentTable(payments, true)
}

// SetPaymentStatus changes a payment's status (admin).
func (v *Views) SetPaymentStatus(id int64, newStatus string) {
	if !v.gate(session.RoleAdmin) {
		return
	}

	p, err := v.payments.UpdateStatus(id, newStatus)
	if err != nil {
		v.renderError(err)
		return
	}
	fmt.Fprintf(v.out, "Payment #%d is now %s.\n", p.ID, p.Status)
}

func (v *Views) paymentTable(payments []models.Payment, withUser bool) {
	if len(payments) == 0 {
		fmt.Fprintln(v.out, "No payments.")
		return
	}

	w := v.table()
	if withUser {
		fmt.Fprintln(w, "ID\tORDER\tUSER\tAMOUNT\tSTATUS\tMETHOD\tDATE")
		for _, p := range payments {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.OrderID, p.Username, money(p.Amount), p.Status, p.PaymentMethod, when(p.PaymentDate))
		}
	} else {
		fmt.Fprintln(w, "ID\tORDER\tAMOUNT\tSTATUS\tMETHOD\tDATE")
		for _, p := range payments {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
				p.ID, p.OrderID, money(p.Amount), p.Status, p.PaymentMethod, when(p.PaymentDate))
		}
	}
	w.Flush()
}
