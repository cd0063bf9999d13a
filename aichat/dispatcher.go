// Package aichat answers chat messages with canned, keyword-matched
// templates. Despite the product name there is no model behind it; replies
// are deterministic string lookups.
package aichat

import (
	"fmt"
	"strings"
)

type rule struct {
	topic    string
	keywords []string
}

// Rules are evaluated in order; the first keyword hit wins.
var rules = []rule{
	{"greeting", []string{"hello", "hi", "salom", "assalomu"}},
	{"income", []string{"income", "sales", "revenue", "daromad", "savdo"}},
	{"expense", []string{"expense", "spending", "cost", "xarajat"}},
	{"stock", []string{"stock", "warehouse", "inventory", "product", "ombor", "mahsulot"}},
	{"tasks", []string{"task", "todo", "vazifa"}},
	{"employees", []string{"employee", "staff", "xodim"}},
	{"help", []string{"help", "yordam", "?"}},
}

var templates = map[string]map[string]string{
	"greeting": {
		"en": "Hello! Ask me about your income, expenses, stock, tasks or employees.",
		"uz": "Salom! Mendan daromad, xarajat, ombor, vazifalar yoki xodimlar haqida so'rang.",
	},
	"income": {
		"en": "Open Reports → Summary to see income for the selected period, or Reports → Forecast for next month's projection.",
		"uz": "Tanlangan davr daromadini Hisobotlar → Umumiy bo'limida, kelgusi oy prognozini Hisobotlar → Prognoz bo'limida ko'ring.",
	},
	"expense": {
		"en": "Your top expense categories are listed in Reports → Summary. Record new expenses from the Transactions screen.",
		"uz": "Eng katta xarajat toifalari Hisobotlar → Umumiy bo'limida. Yangi xarajatni Tranzaksiyalar ekranidan kiriting.",
	},
	"stock": {
		"en": "The Warehouse screen shows every product with its quantity; items at or below the minimum are flagged as low stock.",
		"uz": "Ombor ekranida har bir mahsulot miqdori ko'rinadi; minimal miqdorga yetganlari kam zaxira deb belgilanadi.",
	},
	"tasks": {
		"en": "Create and assign tasks on the Employees screen; completed tasks record their completion time automatically.",
		"uz": "Vazifalarni Xodimlar ekranida yarating va biriktiring; bajarilgan vazifalar vaqti avtomatik yoziladi.",
	},
	"employees": {
		"en": "Manage your team on the Employees screen: add people by their Telegram id and assign roles.",
		"uz": "Jamoani Xodimlar ekranida boshqaring: odamlarni Telegram id orqali qo'shing va rol biriktiring.",
	},
	"help": {
		"en": "I can point you at reports, stock levels, transactions, tasks and employees. Try asking about one of those.",
		"uz": "Men hisobotlar, ombor, tranzaksiyalar, vazifalar va xodimlar bo'yicha yo'naltira olaman. Shulardan birini so'rang.",
	},
}

var fallback = map[string]string{
	"en": "Your message: %s. I can answer questions about reports, stock, tasks and employees.",
	"uz": "Sizning xabaringiz: %s. Men hisobotlar, ombor, vazifalar va xodimlar haqidagi savollarga javob bera olaman.",
}

// Reply produces the canned answer for a message in the given language.
// Unknown languages fall back to English.
func Reply(language, message string) string {
	if _, ok := fallback[language]; !ok {
		language = "en"
	}
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return templates[r.topic][language]
			}
		}
	}
	return fmt.Sprintf(fallback[language], strings.TrimSpace(message))
}
