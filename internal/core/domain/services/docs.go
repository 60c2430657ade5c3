// Package services holds domain rules that need more than one aggregate to
// decide.
//
// The package includes:
//   - DocumentIntake: decides whether a requester may attach a document to an
//     application, using the owning order and the application's status
package services
