// Package yagout implements the YagoutPay wire protocol: the positional
// pipe/tilde payload encoding, the AES-256-CBC transport cipher and the
// SHA-256 hash conventions. The gateway parses everything by position, so
// field and section orders in this package are wire contracts.
package yagout

import "strings"

// Section identifies one of the nine tilde-separated payload segments.
type Section string

const (
	SectionTxn   Section = "txn_details"
	SectionPg    Section = "pg_details"
	SectionCard  Section = "card_details"
	SectionCust  Section = "cust_details"
	SectionBill  Section = "bill_details"
	SectionShip  Section = "ship_details"
	SectionItem  Section = "item_details"
	SectionUpi   Section = "upi_details"
	SectionOther Section = "other_details"
)

// payloadSections is the fixed segment order of the full payload.
var payloadSections = []Section{
	SectionTxn,
	SectionPg,
	SectionCard,
	SectionCust,
	SectionBill,
	SectionShip,
	SectionItem,
	SectionUpi,
	SectionOther,
}

// sectionOrders fixes the field order inside each segment. The upi segment
// carries no fields and always renders empty.
var sectionOrders = map[Section][]string{
	SectionTxn: {
		"ag_id", "me_id", "order_no", "amount", "country",
		"currency", "txn_type", "success_url", "failure_url", "channel",
	},
	SectionPg:   {"pg_id", "paymode", "scheme", "wallet_type"},
	SectionCard: {"card_no", "exp_month", "exp_year", "cvv", "card_name"},
	SectionCust: {"cust_name", "email_id", "mobile_no", "unique_id", "is_logged_in"},
	SectionBill: {"bill_address", "bill_city", "bill_state", "bill_country", "bill_zip"},
	SectionShip: {
		"ship_address", "ship_city", "ship_state", "ship_country",
		"ship_zip", "ship_days", "address_count",
	},
	SectionItem:  {"item_count", "item_value", "item_category"},
	SectionUpi:   {},
	SectionOther: {"udf_1", "udf_2", "udf_3", "udf_4", "udf_5"},
}

// FieldOrder returns the wire field order for a section.
func FieldOrder(s Section) []string {
	return sectionOrders[s]
}

// StringifySection renders one segment: field values pipe-joined in the given
// key order. Keys absent from fields render as empty strings so positions
// never shift. An empty key list renders an empty segment.
func StringifySection(fields map[string]string, orderedKeys []string) string {
	if len(orderedKeys) == 0 {
		return ""
	}
	values := make([]string, len(orderedKeys))
	for i, k := range orderedKeys {
		values[i] = fields[k]
	}
	return strings.Join(values, "|")
}

// BuildPayload renders the full nine-segment payload. Every segment is
// present even when its section map is nil, so the output always contains
// exactly eight tilde separators.
func BuildPayload(sections map[Section]map[string]string) string {
	segments := make([]string, len(payloadSections))
	for i, s := range payloadSections {
		segments[i] = StringifySection(sections[s], sectionOrders[s])
	}
	return strings.Join(segments, "~")
}
