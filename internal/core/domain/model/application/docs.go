// Package application models a single visa application and the documents
// uploaded for it.
//
// Applications start Submitted, are moved between Submitted, Processing,
// Approved and Rejected by staff, and end up Past when the nightly
// reconciliation retires their order. Past applications are frozen: no
// status changes, no new documents.
package application
