// Package restaurant provides the restaurant aggregate and its menu for the
// Wroom platform.
//
// The package includes:
//   - Restaurant: The aggregate root holding identity, address and menu
//   - Item: A menu entry with the catalog price orders snapshot from
//
// Key business rules:
//   - Menu items belong to exactly one restaurant
//   - A blocked restaurant, or one operated by a blocked or deleted owner,
//     accepts no orders
//   - Blocked items cannot be ordered even while the restaurant stays open
package restaurant
