// Package gatewaytest provides a fake Google Maps provider for e2e testing.
//
// The gatewaytest package runs an httptest server that speaks enough of the
// geocoding and text search wire format to stand in for the real provider,
// so tests exercise the actual gateway client and its error taxonomy.
//
// # Setup
//
// Start a fake provider per test and point a client at it:
//
//	func TestSomething(t *testing.T) {
//	    gt := gatewaytest.New(t)
//	    defer gt.Close()
//
//	    client := gt.Client(100000)
//	}
//
// # Seeding Results
//
// Unseeded lookups answer ZERO_RESULTS, the provider's miss behavior.
// Seed results per address or query:
//
//	gt.SetGeocode("48 Rue de Rivoli, Paris", 48.8566, 2.3522)
//	gt.SetPlace("Louvre museum", "Louvre Museum", "place-louvre", 48.8606, 2.3376)
//
// # Failure Injection
//
// Simulate provider outages by status or HTTP code:
//
//	gt.FailWithStatus("OVER_QUERY_LIMIT")
//	gt.FailWithHTTP(http.StatusInternalServerError)
//	gt.Recover()
//
// # Introspection
//
// Assert on what the client actually sent:
//
//	bias, radius := gt.LastBias()
package gatewaytest
