package dlna

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/network"
	"github.com/couchpad-app/couchpad/util"
)

const soapVolumeTemplate = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <s:Body>
    <u:%[1]s xmlns:u="urn:schemas-upnp-org:service:RenderingControl:1">
      <InstanceID>0</InstanceID>
      <Channel>Master</Channel>%[2]s
    </u:%[1]s>
  </s:Body>
</s:Envelope>`

// Renderer is one discovered DLNA media renderer. Only its volume is
// controlled; playback stays with mpv.
type Renderer struct {
	name       string
	controlURL string
	volume     int
}

// Name returns the device's advertised friendly name.
func (r *Renderer) Name() string {
	return r.name
}

// Volume returns the last known volume (0-100).
func (r *Renderer) Volume() int {
	return r.volume
}

// SetVolume sets the renderer volume, clamped to 0-100. The SOAP call is
// best-effort: failures are logged and the cached volume updated anyway so
// repeated presses keep stepping.
func (r *Renderer) SetVolume(volume int) {
	volume = util.Clamp(volume, 0, 100)

	body := fmt.Sprintf(soapVolumeTemplate, "SetVolume",
		fmt.Sprintf("\n      <DesiredVolume>%d</DesiredVolume>", volume))

	if _, err := r.soapCall("SetVolume", body); err != nil {
		log.Warnf("dlna: SetVolume on %s: %v", r.name, err)
	}
	r.volume = volume
}

// RefreshVolume queries the renderer for its current volume.
func (r *Renderer) RefreshVolume() error {
	body := fmt.Sprintf(soapVolumeTemplate, "GetVolume", "")

	resp, err := r.soapCall("GetVolume", body)
	if err != nil {
		return err
	}

	_, after, found := strings.Cut(resp, "<CurrentVolume>")
	if !found {
		return fmt.Errorf("dlna: no CurrentVolume in GetVolume response")
	}
	value, _, found := strings.Cut(after, "</CurrentVolume>")
	if !found {
		return fmt.Errorf("dlna: unterminated CurrentVolume in GetVolume response")
	}

	volume, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("dlna: parse CurrentVolume: %w", err)
	}

	r.volume = util.Clamp(volume, 0, 100)
	return nil
}

func (r *Renderer) soapCall(action, body string) (string, error) {
	req, err := http.NewRequest(http.MethodPost, r.controlURL, strings.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", `text/xml; charset="utf-8"`)
	req.Header.Set("SOAPACTION", fmt.Sprintf("%q", renderingControlType+"#"+action))

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dlna: %s returned status %d", action, resp.StatusCode)
	}
	return string(payload), nil
}

// controlEndpoint resolves a control URL path against the description's
// location.
func controlEndpoint(location, controlPath string) (string, error) {
	base, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(controlPath)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
