// Package dlna discovers DLNA media renderers on the local network via SSDP
// and controls their volume through UPnP RenderingControl SOAP calls.
//
// Discovery is passive after the initial M-SEARCH: the manager joins the
// SSDP multicast group and drains responses non-blockingly each tick.
package dlna

import (
	"encoding/xml"
	"errors"
	"net"
	"os"
	"time"

	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/network"
)

var ssdpAddr = &net.UDPAddr{IP: net.IPv4(239, 255, 255, 250), Port: 1900}

// readPollTimeout is the read deadline used when draining responses. An
// already-expired deadline would fail reads without consuming available
// datagrams, so polling needs a small window instead of time.Now() itself.
const readPollTimeout = time.Millisecond

// Manager owns the SSDP socket and the set of discovered renderers.
type Manager struct {
	conn      *net.UDPConn
	renderers []*Renderer
	known     map[string]bool // by location, to drop duplicate announcements
}

// New binds the SSDP socket and sends the initial M-SEARCH. Failure to bind
// is returned; the overlay runs without volume control in that case.
func New() (*Manager, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{})
	if err != nil {
		return nil, err
	}

	if _, err := conn.WriteToUDP([]byte(mSearch), ssdpAddr); err != nil {
		conn.Close()
		return nil, err
	}

	return &Manager{
		conn:  conn,
		known: make(map[string]bool),
	}, nil
}

// Close releases the SSDP socket.
func (m *Manager) Close() error {
	return m.conn.Close()
}

// Update drains pending SSDP responses without blocking. Returns the name
// of a newly discovered renderer, or "" when none arrived this tick.
func (m *Manager) Update() string {
	buf := make([]byte, 2048)

	for {
		_ = m.conn.SetReadDeadline(time.Now().Add(readPollTimeout))

		n, addr, err := m.conn.ReadFromUDP(buf)
		if err != nil {
			if !errors.Is(err, os.ErrDeadlineExceeded) {
				log.Warnf("dlna: ssdp read: %v", err)
			}
			return ""
		}

		log.Debugf("dlna: %d bytes from %s", n, addr)

		location := parseLocation(buf[:n])
		if location == "" || m.known[location] {
			continue
		}
		m.known[location] = true

		renderer, err := m.describe(location)
		if err != nil {
			log.Warnf("dlna: describe %s: %v", location, err)
			continue
		}

		m.renderers = append(m.renderers, renderer)
		return renderer.Name()
	}
}

// Renderers returns the discovered renderers in discovery order.
func (m *Manager) Renderers() []*Renderer {
	return m.renderers
}

// describe fetches and parses a device description, then probes the
// renderer's current volume.
func (m *Manager) describe(location string) (*Renderer, error) {
	resp, err := network.Client.Get(location)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var desc description
	if err := xml.NewDecoder(resp.Body).Decode(&desc); err != nil {
		return nil, err
	}

	endpoint, err := controlEndpoint(location, desc.controlURL())
	if err != nil {
		return nil, err
	}

	renderer := &Renderer{
		name:       desc.Device.FriendlyName,
		controlURL: endpoint,
	}
	if err := renderer.RefreshVolume(); err != nil {
		log.Warnf("dlna: initial volume for %s: %v", renderer.name, err)
	}
	return renderer, nil
}
