package catalog

// minimalEntries is the last-resort vocabulary used when both the remote
// source and the comprehensive list are unavailable.
var minimalEntries = []Entry{
	{Type: WebhookTriggerType, Category: CategoryTrigger, DisplayName: "Webhook"},
	{Type: ScheduleTriggerType, Category: CategoryTrigger, DisplayName: "Schedule Trigger"},
	{Type: ManualTriggerType, Category: CategoryTrigger, DisplayName: "Manual Trigger"},
	{Type: HTTPRequestType, Category: CategoryAction, DisplayName: "HTTP Request"},
	{Type: "n8n-nodes-base.set", Category: CategoryAction, DisplayName: "Edit Fields"},
	{Type: "n8n-nodes-base.code", Category: CategoryAction, DisplayName: "Code"},
	{Type: IfType, Category: CategoryBranching, DisplayName: "If"},
	{Type: SwitchType, Category: CategoryBranching, DisplayName: "Switch"},
}

// comprehensiveEntries is the bundled vocabulary merged under remote results.
var comprehensiveEntries = []Entry{
	// Triggers
	{Type: WebhookTriggerType, Category: CategoryTrigger, DisplayName: "Webhook"},
	{Type: ScheduleTriggerType, Category: CategoryTrigger, DisplayName: "Schedule Trigger"},
	{Type: "n8n-nodes-base.cron", Category: CategoryTrigger, DisplayName: "Cron"},
	{Type: ManualTriggerType, Category: CategoryTrigger, DisplayName: "Manual Trigger"},
	{Type: "n8n-nodes-base.emailReadImap", Category: CategoryTrigger, DisplayName: "Email Trigger (IMAP)"},
	{Type: "n8n-nodes-base.gmailTrigger", Category: CategoryTrigger, DisplayName: "Gmail Trigger"},
	{Type: "n8n-nodes-base.telegramTrigger", Category: CategoryTrigger, DisplayName: "Telegram Trigger"},
	{Type: "n8n-nodes-base.slackTrigger", Category: CategoryTrigger, DisplayName: "Slack Trigger"},
	{Type: "n8n-nodes-base.githubTrigger", Category: CategoryTrigger, DisplayName: "GitHub Trigger"},
	{Type: "n8n-nodes-base.googleSheetsTrigger", Category: CategoryTrigger, DisplayName: "Google Sheets Trigger"},
	{Type: "n8n-nodes-base.googleCalendarTrigger", Category: CategoryTrigger, DisplayName: "Google Calendar Trigger"},
	{Type: "n8n-nodes-base.typeformTrigger", Category: CategoryTrigger, DisplayName: "Typeform Trigger"},
	{Type: "n8n-nodes-base.stripeTrigger", Category: CategoryTrigger, DisplayName: "Stripe Trigger"},
	{Type: "n8n-nodes-base.shopifyTrigger", Category: CategoryTrigger, DisplayName: "Shopify Trigger"},
	{Type: "n8n-nodes-base.whatsAppTrigger", Category: CategoryTrigger, DisplayName: "WhatsApp Trigger"},

	// Branching
	{Type: IfType, Category: CategoryBranching, DisplayName: "If"},
	{Type: SwitchType, Category: CategoryBranching, DisplayName: "Switch"},

	// Core actions
	{Type: HTTPRequestType, Category: CategoryAction, DisplayName: "HTTP Request"},
	{Type: "n8n-nodes-base.set", Category: CategoryAction, DisplayName: "Edit Fields"},
	{Type: "n8n-nodes-base.code", Category: CategoryAction, DisplayName: "Code"},
	{Type: "n8n-nodes-base.function", Category: CategoryAction, DisplayName: "Function"},
	{Type: "n8n-nodes-base.merge", Category: CategoryAction, DisplayName: "Merge"},
	{Type: "n8n-nodes-base.filter", Category: CategoryAction, DisplayName: "Filter"},
	{Type: "n8n-nodes-base.splitInBatches", Category: CategoryAction, DisplayName: "Loop Over Items"},
	{Type: "n8n-nodes-base.wait", Category: CategoryAction, DisplayName: "Wait"},
	{Type: "n8n-nodes-base.noOp", Category: CategoryAction, DisplayName: "No Operation"},
	{Type: "n8n-nodes-base.respondToWebhook", Category: CategoryAction, DisplayName: "Respond to Webhook"},
	{Type: "n8n-nodes-base.executeCommand", Category: CategoryAction, DisplayName: "Execute Command"},
	{Type: "n8n-nodes-base.dateTime", Category: CategoryAction, DisplayName: "Date & Time"},
	{Type: "n8n-nodes-base.crypto", Category: CategoryAction, DisplayName: "Crypto"},
	{Type: "n8n-nodes-base.xml", Category: CategoryAction, DisplayName: "XML"},
	{Type: "n8n-nodes-base.html", Category: CategoryAction, DisplayName: "HTML"},
	{Type: "n8n-nodes-base.markdown", Category: CategoryAction, DisplayName: "Markdown"},
	{Type: "n8n-nodes-base.spreadsheetFile", Category: CategoryAction, DisplayName: "Spreadsheet File"},
	{Type: StickyNoteType, Category: CategoryAction, DisplayName: "Sticky Note"},

	// Messaging
	{Type: "n8n-nodes-base.emailSend", Category: CategoryAction, DisplayName: "Send Email"},
	{Type: "n8n-nodes-base.gmail", Category: CategoryAction, DisplayName: "Gmail"},
	{Type: "n8n-nodes-base.slack", Category: CategoryAction, DisplayName: "Slack"},
	{Type: "n8n-nodes-base.telegram", Category: CategoryAction, DisplayName: "Telegram"},
	{Type: "n8n-nodes-base.discord", Category: CategoryAction, DisplayName: "Discord"},
	{Type: "n8n-nodes-base.whatsApp", Category: CategoryAction, DisplayName: "WhatsApp Business Cloud"},
	{Type: "n8n-nodes-base.twilio", Category: CategoryAction, DisplayName: "Twilio"},

	// Data & storage
	{Type: "n8n-nodes-base.googleSheets", Category: CategoryAction, DisplayName: "Google Sheets"},
	{Type: "n8n-nodes-base.googleDrive", Category: CategoryAction, DisplayName: "Google Drive"},
	{Type: "n8n-nodes-base.googleCalendar", Category: CategoryAction, DisplayName: "Google Calendar"},
	{Type: "n8n-nodes-base.airtable", Category: CategoryAction, DisplayName: "Airtable"},
	{Type: "n8n-nodes-base.notion", Category: CategoryAction, DisplayName: "Notion"},
	{Type: "n8n-nodes-base.postgres", Category: CategoryAction, DisplayName: "Postgres"},
	{Type: "n8n-nodes-base.mySql", Category: CategoryAction, DisplayName: "MySQL"},
	{Type: "n8n-nodes-base.mongoDb", Category: CategoryAction, DisplayName: "MongoDB"},
	{Type: "n8n-nodes-base.redis", Category: CategoryAction, DisplayName: "Redis"},
	{Type: "n8n-nodes-base.ftp", Category: CategoryAction, DisplayName: "FTP"},
	{Type: "n8n-nodes-base.ssh", Category: CategoryAction, DisplayName: "SSH"},

	// SaaS
	{Type: "n8n-nodes-base.github", Category: CategoryAction, DisplayName: "GitHub"},
	{Type: "n8n-nodes-base.gitlab", Category: CategoryAction, DisplayName: "GitLab"},
	{Type: "n8n-nodes-base.jira", Category: CategoryAction, DisplayName: "Jira Software"},
	{Type: "n8n-nodes-base.trello", Category: CategoryAction, DisplayName: "Trello"},
	{Type: "n8n-nodes-base.asana", Category: CategoryAction, DisplayName: "Asana"},
	{Type: "n8n-nodes-base.hubspot", Category: CategoryAction, DisplayName: "HubSpot"},
	{Type: "n8n-nodes-base.mailchimp", Category: CategoryAction, DisplayName: "Mailchimp"},
	{Type: "n8n-nodes-base.stripe", Category: CategoryAction, DisplayName: "Stripe"},
	{Type: "n8n-nodes-base.shopify", Category: CategoryAction, DisplayName: "Shopify"},
	{Type: "n8n-nodes-base.wordpress", Category: CategoryAction, DisplayName: "WordPress"},
	{Type: "n8n-nodes-base.webflow", Category: CategoryAction, DisplayName: "Webflow"},
	{Type: "n8n-nodes-base.dropbox", Category: CategoryAction, DisplayName: "Dropbox"},
	{Type: "n8n-nodes-base.openAi", Category: CategoryAction, DisplayName: "OpenAI"},

	// LangChain
	{Type: "@n8n/n8n-nodes-langchain.agent", Category: CategoryLangChain, DisplayName: "AI Agent"},
	{Type: "@n8n/n8n-nodes-langchain.chainLlm", Category: CategoryLangChain, DisplayName: "Basic LLM Chain"},
	{Type: "@n8n/n8n-nodes-langchain.lmChatOpenAi", Category: CategoryLangChain, DisplayName: "OpenAI Chat Model"},
	{Type: "@n8n/n8n-nodes-langchain.memoryBufferWindow", Category: CategoryLangChain, DisplayName: "Window Buffer Memory"},
	{Type: "@n8n/n8n-nodes-langchain.toolHttpRequest", Category: CategoryLangChain, DisplayName: "HTTP Request Tool"},
}

// typeAliases maps common misspellings and shorthand the generator produces to
// a valid vocabulary type.
var typeAliases = map[string]string{
	"webhook":         WebhookTriggerType,
	"webhooktrigger":  WebhookTriggerType,
	"cron":            "n8n-nodes-base.cron",
	"crontrigger":     ScheduleTriggerType,
	"schedule":        ScheduleTriggerType,
	"scheduletrigger": ScheduleTriggerType,
	"manualtrigger":   ManualTriggerType,
	"http":            HTTPRequestType,
	"httprequest":     HTTPRequestType,
	"api":             HTTPRequestType,
	"gsheets":         "n8n-nodes-base.googleSheets",
	"googlesheets":    "n8n-nodes-base.googleSheets",
	"sheets":          "n8n-nodes-base.googleSheets",
	"email":           "n8n-nodes-base.emailSend",
	"sendemail":       "n8n-nodes-base.emailSend",
	"gmail":           "n8n-nodes-base.gmail",
	"slack":           "n8n-nodes-base.slack",
	"discord":         "n8n-nodes-base.discord",
	"telegram":        "n8n-nodes-base.telegram",
	"whatsapp":        "n8n-nodes-base.whatsApp",
	"sms":             "n8n-nodes-base.twilio",
	"condition":       IfType,
	"conditional":     IfType,
	"branch":          IfType,
	"javascript":      "n8n-nodes-base.code",
	"js":              "n8n-nodes-base.code",
	"transform":       "n8n-nodes-base.set",
	"setfields":       "n8n-nodes-base.set",
	"database":        "n8n-nodes-base.postgres",
	"sql":             "n8n-nodes-base.postgres",
	"openai":          "n8n-nodes-base.openAi",
	"gpt":             "n8n-nodes-base.openAi",
	"agent":           "@n8n/n8n-nodes-langchain.agent",
}
