// Package commerce contains the domain model for the site-scoped commerce API.
//
// Key concepts:
//   - Order, Product, ShipmentTracking: immutable values decoded from API
//     responses, owned by the caller that receives them
//   - ProductType, OrderStatus: forward-compatible enumerations that preserve
//     wire values the client does not know about instead of failing
//   - Sentinel errors: the uniform error taxonomy shared by the network and
//     remote layers (transport, HTTP status, decode)
//
// Design Pattern: Ports & Adapters
//   - The domain layer defines the values and error contract
//   - The network/remote adapters in the infrastructure layer produce them
package commerce
