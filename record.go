package zeirishi

// NoEmailSentinel is written in place of an address for records whose detail
// page yielded no email. The export never contains an empty email cell.
const NoEmailSentinel = "記載なし"

// Field is a text value extracted from page markup. Found distinguishes a
// selector that matched nothing from an element that was present but empty.
type Field struct {
	Value string
	Found bool
}

// NewField returns a found Field holding value.
func NewField(value string) Field {
	return Field{Value: value, Found: true}
}

// String returns the value, or the empty string when the field was not found.
func (f Field) String() string {
	if !f.Found {
		return ""
	}
	return f.Value
}

// Email is the outcome of an email lookup for one record.
type Email struct {
	Address string
	Found   bool
}

// Export renders the email for output: the address when one was found,
// NoEmailSentinel otherwise.
func (e Email) Export() string {
	if !e.Found || e.Address == "" {
		return NoEmailSentinel
	}
	return e.Address
}

// Record is one directory entry from a search results page.
type Record struct {
	// Prefecture is the search parameter, assigned by the driver.
	// It is never derived from page content.
	Prefecture string

	OfficeName     Field
	Representative Field
	Phone          Field
	Address        Field

	// RegistrationEra holds the era date tokens found in the listing,
	// joined with EraSeparator. Empty when the listing showed none.
	RegistrationEra string

	Email Email

	// DetailURL is the absolute URL of the entry's detail page, used only
	// as a fetch key and never exported. Empty means no detail page was
	// linked, so no email lookup is performed.
	DetailURL string
}

// Dedupe removes records whose (office name, phone) pair was already seen,
// keeping the first occurrence in encounter order.
func Dedupe(records []*Record) []*Record {
	type key struct {
		office string
		phone  string
	}
	seen := make(map[key]bool, len(records))
	out := make([]*Record, 0, len(records))
	for _, rec := range records {
		k := key{office: rec.OfficeName.String(), phone: rec.Phone.String()}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, rec)
	}
	return out
}

// Partition splits records into those with a found email and those without.
// The has-email subset is additionally deduplicated by office name alone:
// once an address is known for an office, further contact rows for it are
// redundant. Encounter order is preserved in both subsets.
func Partition(records []*Record) (withEmail, withoutEmail []*Record) {
	seenOffice := make(map[string]bool)
	for _, rec := range records {
		if !rec.Email.Found {
			withoutEmail = append(withoutEmail, rec)
			continue
		}
		office := rec.OfficeName.String()
		if seenOffice[office] {
			continue
		}
		seenOffice[office] = true
		withEmail = append(withEmail, rec)
	}
	return withEmail, withoutEmail
}
