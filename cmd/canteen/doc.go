// Command canteen is the terminal client for the SmartBytes canteen
// service: browse the menu, fill a cart, place and track orders, pay,
// and run the manager, admin and NGO workflows.
//
// Session, cart and notifications persist between invocations through
// the state repository (a local file by default, S3 or a database when
// configured), so the client behaves like a long-lived app across
// separate command runs.
package main
