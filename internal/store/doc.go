// Package store is the persistence boundary of the field editor.
//
// A Gateway combines two destinations:
//
//   - a LocalStore: a JSON key-value file in the data directory, holding the
//     saved field under the fixed key "savedField"
//   - a Client for the record server's POST/GET /api/field resource
//
// Save writes locally, then delivers to the record server in a goroutine the
// caller never waits on. Delivery failures are classified as RemoteError and
// logged; they are not returned and do not roll back the local write. Load
// and Clear only touch the local store.
//
// Command-line front ends call Wait before exiting so an in-flight delivery
// is not cut off by process exit:
//
//	gw := store.NewGateway(store.NewLocalStore(dir), store.NewClient(url))
//	_ = gw.Save(ctx, def)
//	_ = gw.Wait(ctx)
package store
