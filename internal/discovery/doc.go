// Package discovery lets the editor find record servers on the local network.
//
// A record server started with --advertise registers itself over multicast
// DNS as a "_fieldbuilder._tcp" service with TXT records describing its
// resource path and version. The editor's scan command browses for that
// service type and lists what answers before the timeout.
//
// # Usage Example
//
//	services, err := discovery.Scan(ctx, 5*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, svc := range services {
//	    fmt.Println(svc.BaseURL())
//	}
//
// Advertising:
//
//	ad, err := discovery.Advertise(4000, version.Version)
//	if err != nil {
//	    return err
//	}
//	defer ad.Shutdown()
//
// mDNS requires multicast on the local network segment; discovery across
// routers or VPNs generally does not work. Pass --remote explicitly there.
package discovery
