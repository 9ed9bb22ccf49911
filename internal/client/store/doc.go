// Package store holds the client-side state of the console: the session and
// the user directory.
//
// Each store is an owned container. State changes go through small event
// values whose apply method is a pure function of the previous state; the
// intent methods (SubmitLogin, LoadPage, Create, ...) are the only places
// that talk to services and storage. Views read with State and get notified
// through Subscribe.
package store
