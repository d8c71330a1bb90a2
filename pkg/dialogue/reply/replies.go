// Package reply holds every canned reply the bot can produce, rendered from
// the static configuration surface (company name, bot name, support URL,
// minimum-order thresholds). Keeping the strings in one place mirrors how the
// support team reviews the widget copy.
package reply

import (
	"fmt"
	"strings"

	"keelie-chatbot-be/pkg/catalog"
)

// Texts renders every static reply. Construct once from config; read-only
// afterwards.
type Texts struct {
	CompanyName    string
	BotName        string
	SupportURL     string
	MinOrderFirst  int
	MinOrderRepeat int
}

func NewTexts(company, bot, supportURL string, minFirst, minRepeat int) *Texts {
	return &Texts{
		CompanyName:    company,
		BotName:        bot,
		SupportURL:     supportURL,
		MinOrderFirst:  minFirst,
		MinOrderRepeat: minRepeat,
	}
}

func (t *Texts) Greeting() string {
	return fmt.Sprintf(
		"Hello! I'm %s, the %s customer service assistant. Ask me about stock codes, minimum order values, Keeleco®, or delivery.",
		t.BotName, t.CompanyName)
}

func (t *Texts) Farewell() string {
	return fmt.Sprintf("Thanks for chatting with %s! Have a lovely day. If anything else comes up, I'm right here.", t.CompanyName)
}

func (t *Texts) PrivacyNotice() string {
	return fmt.Sprintf(
		"For your privacy, please don't share personal details like emails, phone numbers, addresses or order references in this chat. "+
			"For anything involving your account or a specific order, our customer service team can help securely:\n%s", t.SupportURL)
}

func (t *Texts) DeliveryGuidance() string {
	return "For delivery updates, please check your order confirmation email. It includes your estimated delivery date and tracking details if available."
}

func (t *Texts) MinimumOrder() string {
	return fmt.Sprintf(
		"**Minimum order values:**\n• **£%d** for first-time buyers\n• **£%d** for repeat buyers\n\n"+
			"If you're unsure whether you qualify as a first-time or repeat buyer, our customer service team can help:\n%s",
		t.MinOrderFirst, t.MinOrderRepeat, t.SupportURL)
}

func (t *Texts) ProductionInfo() string {
	return "Our toys are produced across a small number of trusted manufacturing partners:\n" +
		"• **95%** in China\n• **3%** in Indonesia\n• **2%** in Cambodia"
}

func (t *Texts) HowItsMade() string {
	return "**How our plush products are made (high level):**\n" +
		"• **Design & prototyping:** artwork, patterns, and sample development.\n" +
		"• **Material selection:** outer fabric, threads, trims, and stuffing are chosen.\n" +
		"• **Cut & sew:** fabric panels are cut, embroidered or printed if needed, then stitched together.\n" +
		"• **Stuffing & shaping:** filling is added and the product is shaped and finished.\n" +
		"• **Quality & safety checks:** stitching strength, component security, and overall finish are checked.\n" +
		"• **Packaging:** labels and packaging are applied before shipment.\n\n" +
		"If you share the **product name / size / stock code**, I can explain the typical materials and any special features."
}

func (t *Texts) HowItsMadeEco() string {
	return "**How Keeleco® products are made (high level):**\n" +
		"• Materials are chosen with sustainability in mind, including recycled content where applicable.\n" +
		"• Fabrics are cut into panels, then stitched and assembled.\n" +
		"• Stuffing is filled, products are shaped, and seams are closed securely.\n" +
		"• Items go through **quality checks** on stitching, finish, and safety-related components.\n" +
		"• Packaging and labelling are applied before dispatch.\n\n" +
		"If you tell me the **product name or stock code**, I can be more specific about materials and construction."
}

func (t *Texts) EcoOverview() string {
	return "We're actively working to reduce environmental impact. Here are a few examples:\n" +
		"• **Keeleco®** is our **100% recycled** soft toy range, made from **100% recycled polyester** derived from plastic waste.\n" +
		"• As a guide, around **10 recycled 500ml bottles** can produce enough fibre for an **18cm** toy.\n" +
		"• Our **logo and hangtags** are made from **FSC card** and attached with **cotton**.\n" +
		"• **Shipping cartons** are recycled and sealed with **paper tape**.\n" +
		"• We work with suppliers that have **independent, internationally recognised social/ethical audits** in place.\n\n" +
		"If you'd like, tell me which product or range you're interested in and I can help point you to the right place."
}

func (t *Texts) HelpMenu() string {
	return "Here's what I can help with:\n" +
		"• **Stock codes / SKUs** — tell me a product name or a code\n" +
		"• **Minimum order values**\n" +
		"• **Delivery & tracking guidance**\n" +
		"• **Keeleco® & sustainability**\n" +
		"• **Where and how our toys are made**\n\n" +
		fmt.Sprintf("For anything else, our customer service team is here:\n%s", t.SupportURL)
}

func (t *Texts) Fallback() string {
	return "I'm not totally sure, but I can help if you tell me a little more.\n\n" +
		"Try asking about:\n• minimum order values\n• stock codes / SKUs\n• delivery / tracking\n• Keeleco® sustainability\n\n" +
		fmt.Sprintf("Or contact customer service here:\n%s", t.SupportURL)
}

func (t *Texts) Clarify() string {
	return "Sorry about that — let's get you to the right place. Are you asking about **stock codes**, **minimum order values**, **delivery**, or **Keeleco® sustainability**?"
}

func (t *Texts) Escalation() string {
	return fmt.Sprintf(
		"I'm sorry I couldn't resolve this for you. Let me hand you over to a human — our customer service team will pick this up:\n%s", t.SupportURL)
}

func (t *Texts) StockUnavailable() string {
	return fmt.Sprintf("I can't access stock codes right now. Please contact customer service here:\n%s", t.SupportURL)
}

func (t *Texts) StockNotSure() string {
	return "I'm not sure which product you mean. Could you please provide the product name?"
}

func (t *Texts) StockCodeReply(productName, code string) string {
	return fmt.Sprintf("The stock code for **%s** is **%s**.", title(productName), code)
}

func (t *Texts) ProductForCode(code, productName string) string {
	return fmt.Sprintf("The product with stock code **%s** is **%s**.", code, title(productName))
}

func (t *Texts) CodeNotFound(code string) string {
	return fmt.Sprintf("I couldn't find a product with the stock code **%s**. Please check the code and try again.", code)
}

func (t *Texts) ChoicePrompt(candidates []catalog.Row) string {
	var b strings.Builder
	b.WriteString("I found a few possible matches — which one do you mean?\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, title(c.ProductName))
	}
	b.WriteString("\nReply with the number (1-3) or the product name.")
	return b.String()
}

func (t *Texts) EmptyMessage() string {
	return "Please type a message."
}

// title uppercases the first letter of each word, the way product names are
// printed in the catalog export.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}
