// Package delivery provides the Delivery aggregate: one driver carrying one
// customer's order from one restaurant at a requested time.
//
// Key business rules:
//   - The restaurant and the customer must be based in the same city
//   - A delivery binds its driver, restaurant, customer, time and distance at
//     creation; none of them changes afterwards
//   - Delivery times are kept in UTC at microsecond precision so that the
//     exact-time availability check behaves the same in every storage adapter
package delivery
