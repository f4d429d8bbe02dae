package content

import (
	"net/url"
	"strings"
)

// LocationShare holds a ready-to-send location message and deep links that
// open it in the phone's apps.
type LocationShare struct {
	Message     string `json:"message"`
	MapsURL     string `json:"maps_url"`
	SMSURL      string `json:"sms_url"`
	WhatsAppURL string `json:"whatsapp_url"`
	// Set only for SOS shares: dial the emergency number first
	CallURL string `json:"call_url,omitempty"`
}

const (
	sosMessagePrefix   = "Emergency! I need help. My location: "
	shareMessagePrefix = "My current location: "
)

// ShareLocation builds the message for the "Share Location" and SOS buttons.
//
// A plain share addresses no recipient in the SMS link. An SOS share addresses
// the SMS to the catalog's SOS number and includes a tel: link for it.
func (c *Catalog) ShareLocation(pos Position, sos bool) (*LocationShare, error) {
	if err := pos.Validate(); err != nil {
		return nil, err
	}

	mapsURL := MapsURL(pos)
	share := &LocationShare{MapsURL: mapsURL}

	recipient := ""
	if sos {
		share.Message = sosMessagePrefix + mapsURL
		share.CallURL = callURL(c.SOSNumber)
		recipient = c.SOSNumber
	} else {
		share.Message = shareMessagePrefix + mapsURL
	}

	share.SMSURL = smsURL(recipient, share.Message)
	share.WhatsAppURL = "whatsapp://send?text=" + escape(share.Message)
	return share, nil
}

// MapsURL returns a Google Maps link pinning pos.
func MapsURL(pos Position) string {
	return "https://maps.google.com/?q=" + formatLatLng(pos)
}

func callURL(number string) string {
	return "tel:" + number
}

// smsURL follows RFC 5724: sms:<recipient>?body=<text>.
func smsURL(recipient, body string) string {
	return "sms:" + recipient + "?body=" + escape(body)
}

// escape percent-encodes s for a query value, using %20 rather than '+' for
// spaces since messaging apps do not decode '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
