// Package bankdata provides the net/http component serving seeded
// synthetic banking datasets: customer, account, and transaction
// resources plus a liveness endpoint. Every request resolves its own
// generation run from query parameters, so responses for the same seed
// and parameters are byte-for-byte identical.
package bankdata
