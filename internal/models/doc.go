// package models contains the domain types shared across services, the
// resolver, and task engines. All entities are request-scoped: created from
// an API response or CSV row, transformed, and discarded at the end of the
// operation that produced them.
package models
