package sample

import "github.com/triagedesk/backend/internal/models"

var firstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia", "Mason",
	"Isabella", "Lucas", "Mia", "Oliver", "Charlotte", "Elijah", "Amelia",
	"James", "Harper", "Benjamin", "Evelyn", "Henry", "Nora", "Alexander",
	"Zoe", "Daniel", "Lily", "Matthew", "Chloe", "Samuel", "Ruby", "David",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Clark", "Lewis",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "protonmail.com"}

// descriptionPools holds per-category complaint text templates. The subject
// shown in list views is a truncation of one of these.
var descriptionPools = map[models.Category][]string{
	models.CategoryBilling: {
		"I was charged twice for my monthly subscription and the duplicate charge has not been reversed despite contacting support last week",
		"My invoice shows a fee I never agreed to and I would like a detailed breakdown of all charges on my account",
		"The promotional discount I signed up with was not applied to my latest bill and I am being charged the full price",
		"An unknown transaction appeared on my statement from your company and I did not authorize this payment",
	},
	models.CategoryTechnical: {
		"The application crashes every time I try to upload a file larger than a few megabytes and I lose all my work",
		"I cannot log into my dashboard since the last update, the page keeps redirecting me back to the sign-in screen",
		"The API integration stopped returning data yesterday and our internal reports are now completely empty",
		"Two-factor authentication codes are never arriving on my phone so I am locked out of the system entirely",
	},
	models.CategoryDelivery: {
		"My order was marked as delivered three days ago but nothing has arrived and the courier has no record of it",
		"The package arrived severely damaged with the box crushed and several items inside broken beyond use",
		"My shipment has been stuck in the same sorting facility for over a week with no status updates at all",
		"The delivery was left at the wrong address and the tracking photo shows a building that is not mine",
	},
	models.CategoryRefund: {
		"I returned the product two weeks ago with tracking confirmation but the refund still has not been processed",
		"I was promised a full refund by your support agent but only received a partial amount back on my card",
		"I cancelled my order within the allowed window yet I was still charged and now need the payment reversed",
		"The refund was issued to an old expired card instead of my current payment method and the money is lost",
	},
	models.CategoryCustomerCare: {
		"I have contacted support four times about the same issue and every agent gives me a different answer",
		"Your agent was dismissive and ended the chat before my problem was resolved which I find unacceptable",
		"I have been waiting on a promised callback for five days and nobody from your team has reached out",
		"The support hotline kept me on hold for over an hour and then disconnected the call without warning",
	},
	models.CategoryProduct: {
		"The product stopped working after two weeks of normal use and is clearly defective out of the box",
		"The item I received looks nothing like the photos on your website and the materials feel completely different",
		"A safety seal on the product was already broken when the package arrived and I do not trust using it",
		"The advertised feature that made me buy this product simply does not exist in the version I received",
	},
	models.CategoryAccount: {
		"My account was locked without explanation and the recovery process keeps rejecting my correct security answers",
		"Someone changed the email address on my account and I never received any confirmation or warning about it",
		"I asked for my account to be deleted a month ago and I am still receiving marketing emails every day",
		"My saved preferences and order history disappeared after your migration and support cannot restore them",
	},
}

var entityPool = map[string][]string{
	"order_number":   {"ORD-48213", "ORD-55901", "ORD-10294", "ORD-73356", "ORD-88412"},
	"product_name":   {"Aurora Headphones", "Volt Charger", "Nimbus Router", "Atlas Backpack"},
	"amount":         {"$29.99", "$120.00", "$54.50", "$310.75", "$8.25"},
	"account_number": {"AC-29481", "AC-77310", "AC-10583"},
}

var attachmentPool = []string{
	"receipt.pdf", "screenshot.png", "invoice_march.pdf", "damaged_item.jpg", "bank_statement.pdf",
}

type eventTemplate struct {
	Type        string
	Description string
	Icon        string
	Color       string
}

// eventTemplates format strings take the complaint category as their only verb.
var eventTemplates = []eventTemplate{
	{models.EventClassified, "AI classified a new %s complaint", "cpu", "#0ea5e9"},
	{models.EventAssigned, "A %s complaint was assigned to an agent", "user-check", "#8b5cf6"},
	{models.EventStatusChange, "Status updated on a %s complaint", "refresh", "#f59e0b"},
	{models.EventEscalated, "A %s complaint was escalated to the team lead", "alert-triangle", "#dc3545"},
	{models.EventResolved, "A %s complaint was marked resolved", "check-circle", "#28a745"},
	{models.EventComment, "An agent commented on a %s complaint", "message-square", "#6c757d"},
}
