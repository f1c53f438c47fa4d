// Package contact builds the chat, call and share targets for the shop. It
// only composes addresses; opening them is up to the client.
package contact

import (
	"fmt"
	"net/url"
	"strings"

	"mobileHospital/domain"
)

// WhatsAppURL opens a chat with the shop, prefilled with an inquiry about
// productName when one is given.
func WhatsAppURL(shop domain.ShopInfo, productName string) string {
	text := fmt.Sprintf("Hello, I'm interested in products at %s.", shop.Name)
	if productName = strings.TrimSpace(productName); productName != "" {
		text = fmt.Sprintf("Hello, I'm interested in \"%s\" at %s.", productName, shop.Name)
	}

	return "https://wa.me/" + digits(shop.Whatsapp) + "?text=" + escape(text)
}

// CallURL dials the shop's display number.
func CallURL(shop domain.ShopInfo) string {
	return "tel:" + strings.ReplaceAll(strings.ReplaceAll(shop.Phone, " ", ""), "-", "")
}

// ShareText is the blurb used when a customer shares the shop.
func ShareText(shop domain.ShopInfo) string {
	return fmt.Sprintf("Check out the latest second-hand mobiles and accessories at %s! Best prices guaranteed.", shop.Name)
}

type Links struct {
	WhatsApp string `json:"whatsapp"`
	Call     string `json:"call"`
	Map      string `json:"map"`
	Share    string `json:"share"`
}

func LinksFor(shop domain.ShopInfo, productName string) Links {
	return Links{
		WhatsApp: WhatsAppURL(shop, productName),
		Call:     CallURL(shop),
		Map:      shop.GoogleMapURL,
		Share:    ShareText(shop),
	}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
