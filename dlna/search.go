package dlna

import (
	"bufio"
	"net/http"
	"net/textproto"
	"strings"
)

// mSearch is the SSDP discovery request for media renderers.
const mSearch = "M-SEARCH * HTTP/1.1\r\n" +
	"Host: 239.255.255.250:1900\r\n" +
	"Man: \"ssdp:discover\"\r\n" +
	"Mx: 2\r\n" +
	"St: urn:schemas-upnp-org:device:MediaRenderer:1\r\n" +
	"\r\n"

// parseLocation extracts the Location header from an SSDP response or
// NOTIFY datagram. Returns "" when the datagram carries none.
func parseLocation(datagram []byte) string {
	reader := textproto.NewReader(bufio.NewReader(strings.NewReader(string(datagram))))

	// Skip the status/request line.
	if _, err := reader.ReadLine(); err != nil {
		return ""
	}

	headers, err := reader.ReadMIMEHeader()
	if err != nil && len(headers) == 0 {
		return ""
	}
	return http.Header(headers).Get("Location")
}
