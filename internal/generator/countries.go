package generator

var emailDomains = []string{"example.com", "mail.com", "remitmail.net", "inbox.org"}

// Free-text country names used for client origin and transaction
// destination fields.
var countries = []string{
	"United States",
	"United Kingdom",
	"Canada",
	"Australia",
	"India",
	"Germany",
	"France",
	"Spain",
	"Italy",
	"Mexico",
	"Brazil",
	"Argentina",
	"Nigeria",
	"Kenya",
	"South Africa",
	"Egypt",
	"Philippines",
	"Vietnam",
	"Thailand",
	"Japan",
	"South Korea",
	"China",
	"Singapore",
	"United Arab Emirates",
	"Saudi Arabia",
	"Turkey",
	"Poland",
	"Netherlands",
	"Sweden",
	"Colombia",
}
