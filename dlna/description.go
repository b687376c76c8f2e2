package dlna

import "encoding/xml"

// description is the root of a UPnP device description document.
type description struct {
	XMLName xml.Name `xml:"root"`
	Device  device   `xml:"device"`
}

type device struct {
	FriendlyName string    `xml:"friendlyName"`
	ModelName    string    `xml:"modelName"`
	SerialNumber string    `xml:"serialNumber"`
	Services     []service `xml:"serviceList>service"`
}

type service struct {
	ServiceType string `xml:"serviceType"`
	ServiceID   string `xml:"serviceId"`
	ControlURL  string `xml:"controlURL"`
	EventSubURL string `xml:"eventSubURL"`
}

// renderingControlType identifies the UPnP service handling volume.
const renderingControlType = "urn:schemas-upnp-org:service:RenderingControl:1"

// controlURL returns the RenderingControl control endpoint path, or the
// conventional default when the description omits the service entry.
func (d *description) controlURL() string {
	for _, s := range d.Device.Services {
		if s.ServiceType == renderingControlType && s.ControlURL != "" {
			return s.ControlURL
		}
	}
	return "/upnp/control/RenderingControl1"
}
