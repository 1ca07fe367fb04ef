// Package payloads provides the net/http component behind the
// schema-driven payload tool: it loads an OpenAPI 3 or Swagger 2
// document by URL or pasted text, lists the operations that accept
// request bodies, and generates one seeded sample payload for a chosen
// operation.
package payloads
