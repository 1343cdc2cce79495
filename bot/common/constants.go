package common

// Embed colours
const (
	ColorPrimary = 0xc9a0ec
)

// NotAvailable is shown for attributes that were never recorded
const NotAvailable = "N/A"
