// Package order provides the Order aggregate root of the visa-services
// domain.
//
// An order is placed by a customer for one destination and travel date and
// owns the visa applications of everyone travelling on it. Experts move the
// order through Created, Processing and Complete; the nightly status
// reconciliation retires Complete orders whose travel date has passed,
// turning the order and all of its applications Past.
//
// Key business rules:
//   - Orders need a customer, a destination and a travel date
//   - Applications can be added only while the order is Created or Processing
//   - Past is reachable only via Retire, and only from Complete
//   - Retiring an order retires every application it owns, so an application
//     is never Past while its order is not
package order
