package parser

import (
	"encoding/xml"
	"fmt"
	"strings"

	"regguard/internal/sanctions/models"
	"regguard/pkg/platform/sentinel"
)

// Wire types mirror the sdn.xml schema. Fields the feed may repeat decode into
// slices, so a single <program> and a list of them land in the same shape and
// nothing downstream branches on one-versus-many.
type sdnList struct {
	PublishInformation publishInformation `xml:"publshInformation"`
	Entries            []sdnEntry         `xml:"sdnEntry"`
}

type publishInformation struct {
	PublishDate string `xml:"Publish_Date"`
}

type sdnEntry struct {
	UID       string    `xml:"uid"`
	FirstName string    `xml:"firstName"`
	LastName  string    `xml:"lastName"`
	SDNType   string    `xml:"sdnType"`
	Programs  []string  `xml:"programList>program"`
	AKAs      []aka     `xml:"akaList>aka"`
	Addresses []address `xml:"addressList>address"`
	Remarks   string    `xml:"remarks"`
}

type aka struct {
	FirstName string `xml:"firstName"`
	LastName  string `xml:"lastName"`
}

type address struct {
	Address1        string `xml:"address1"`
	Address2        string `xml:"address2"`
	Address3        string `xml:"address3"`
	City            string `xml:"city"`
	StateOrProvince string `xml:"stateOrProvince"`
	PostalCode      string `xml:"postalCode"`
	Country         string `xml:"country"`
}

// Parse converts a raw sdn.xml document into the domain dataset.
func Parse(raw []byte) (*models.Dataset, error) {
	var doc sdnList
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding sdn.xml: %v", sentinel.ErrFormat, err)
	}

	ds := &models.Dataset{
		Entries:         make([]models.Entry, 0, len(doc.Entries)),
		PublicationDate: orUnknown(strings.TrimSpace(doc.PublishInformation.PublishDate)),
	}
	for _, entry := range doc.Entries {
		ds.Entries = append(ds.Entries, toEntry(entry))
	}
	return ds, nil
}

func toEntry(raw sdnEntry) models.Entry {
	entry := models.Entry{
		UID:         orUnknown(strings.TrimSpace(raw.UID)),
		Type:        orUnknown(strings.TrimSpace(raw.SDNType)),
		PrimaryName: fullName(raw.FirstName, raw.LastName),
		Programs:    raw.Programs,
		Remarks:     raw.Remarks,
	}
	for _, a := range raw.AKAs {
		if name := fullName(a.FirstName, a.LastName); name != "" {
			entry.Aliases = append(entry.Aliases, name)
		}
	}
	for _, addr := range raw.Addresses {
		if formatted := formatAddress(addr); formatted != "" {
			entry.Addresses = append(entry.Addresses, formatted)
		}
	}
	return entry
}

// fullName joins first/last the way the feed encodes personal names. Entity
// records carry the whole name in lastName, so a missing firstName is normal.
func fullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// formatAddress joins the present components in the feed's fixed order:
// street lines, city, state/province, postal code, country. Absent components
// are skipped entirely; there is no locale awareness beyond this order.
func formatAddress(addr address) string {
	components := []string{
		addr.Address1,
		addr.Address2,
		addr.Address3,
		addr.City,
		addr.StateOrProvince,
		addr.PostalCode,
		addr.Country,
	}
	parts := make([]string, 0, len(components))
	for _, part := range components {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func orUnknown(v string) string {
	if v == "" {
		return models.Unknown
	}
	return v
}
