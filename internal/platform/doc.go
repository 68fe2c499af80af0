package platform

// Package platform contains the glue to external page formats: extraction of
// quote fields from the finance page HTML via goquery.
