package recipes

// BuiltIn returns the bundled recipe index. Deployments with their own
// template library inject a different slice into NewRanker.
func BuiltIn() []Recipe {
	return []Recipe{
		{
			ID:           "slack-form-notification",
			Name:         "Notify Slack on form submission",
			Description:  "Posts a Slack message whenever a webhook receives a form submission.",
			NodeDisplays: []string{"Webhook", "Slack"},
			NodeTypes: []string{
				"n8n-nodes-base.webhook",
				"n8n-nodes-base.slack",
			},
			Credentials:       []string{"slackApi"},
			HasWebhookTrigger: true,
			NodesCount:        2,
		},
		{
			ID:           "sheets-daily-digest",
			Name:         "Daily Google Sheets digest email",
			Description:  "Every morning reads new rows from a Google Sheet and emails a summary.",
			NodeDisplays: []string{"Schedule Trigger", "Google Sheets", "Gmail"},
			NodeTypes: []string{
				"n8n-nodes-base.scheduleTrigger",
				"n8n-nodes-base.googleSheets",
				"n8n-nodes-base.gmail",
			},
			Credentials:    []string{"googleSheetsOAuth2Api", "gmailOAuth2"},
			HasCronTrigger: true,
			NodesCount:     3,
		},
		{
			ID:           "crm-lead-router",
			Name:         "Route new leads by deal size",
			Description:  "Receives a lead webhook, branches on deal size, and creates the record in HubSpot or notifies sales on Slack.",
			NodeDisplays: []string{"Webhook", "If", "HubSpot", "Slack"},
			NodeTypes: []string{
				"n8n-nodes-base.webhook",
				"n8n-nodes-base.if",
				"n8n-nodes-base.hubspot",
				"n8n-nodes-base.slack",
			},
			Credentials:       []string{"hubspotApi", "slackApi"},
			HasWebhookTrigger: true,
			NodesCount:        4,
		},
		{
			ID:           "github-issue-triage",
			Name:         "Label and notify on new GitHub issues",
			Description:  "On a new GitHub issue, applies labels via the API and posts to a Discord channel.",
			NodeDisplays: []string{"GitHub Trigger", "GitHub", "Discord"},
			NodeTypes: []string{
				"n8n-nodes-base.githubTrigger",
				"n8n-nodes-base.github",
				"n8n-nodes-base.discord",
			},
			Credentials:       []string{"githubApi", "discordApi"},
			HasWebhookTrigger: true,
			NodesCount:        3,
		},
		{
			ID:           "stripe-invoice-sync",
			Name:         "Sync paid Stripe invoices to Airtable",
			Description:  "When Stripe reports a paid invoice, appends the payment to an Airtable base and emails a receipt.",
			NodeDisplays: []string{"Stripe Trigger", "Airtable", "Send Email"},
			NodeTypes: []string{
				"n8n-nodes-base.stripeTrigger",
				"n8n-nodes-base.airtable",
				"n8n-nodes-base.emailSend",
			},
			Credentials:       []string{"stripeApi", "airtableTokenApi", "smtp"},
			HasWebhookTrigger: true,
			NodesCount:        3,
		},
		{
			ID:           "rss-to-telegram",
			Name:         "Post new RSS items to Telegram",
			Description:  "Polls an RSS feed hourly and sends each new item to a Telegram chat.",
			NodeDisplays: []string{"Schedule Trigger", "RSS Read", "Telegram"},
			NodeTypes: []string{
				"n8n-nodes-base.scheduleTrigger",
				"n8n-nodes-base.rssFeedRead",
				"n8n-nodes-base.telegram",
			},
			Credentials:    []string{"telegramApi"},
			HasCronTrigger: true,
			NodesCount:     3,
		},
		{
			ID:           "whatsapp-support-bot",
			Name:         "Answer WhatsApp messages with an AI agent",
			Description:  "Incoming WhatsApp messages are answered by an LLM agent with a memory buffer.",
			NodeDisplays: []string{"WhatsApp Trigger", "AI Agent", "WhatsApp Business Cloud"},
			NodeTypes: []string{
				"n8n-nodes-base.whatsAppTrigger",
				"@n8n/n8n-nodes-langchain.agent",
				"n8n-nodes-base.whatsApp",
			},
			Credentials:       []string{"whatsAppTriggerApi", "whatsAppApi", "openAiApi"},
			HasWebhookTrigger: true,
			NodesCount:        3,
		},
		{
			ID:           "backup-postgres-to-s3",
			Name:         "Nightly Postgres table export to S3",
			Description:  "Every night queries Postgres, converts the rows to a file, and uploads it to S3.",
			NodeDisplays: []string{"Schedule Trigger", "Postgres", "Convert to File", "AWS S3"},
			NodeTypes: []string{
				"n8n-nodes-base.scheduleTrigger",
				"n8n-nodes-base.postgres",
				"n8n-nodes-base.convertToFile",
				"n8n-nodes-base.awsS3",
			},
			Credentials:    []string{"postgres", "aws"},
			HasCronTrigger: true,
			NodesCount:     4,
		},
		{
			ID:           "notion-task-mirror",
			Name:         "Mirror Notion tasks into Todoist",
			Description:  "Checks a Notion database on a schedule and creates matching Todoist tasks for new entries.",
			NodeDisplays: []string{"Schedule Trigger", "Notion", "Todoist"},
			NodeTypes: []string{
				"n8n-nodes-base.scheduleTrigger",
				"n8n-nodes-base.notion",
				"n8n-nodes-base.todoist",
			},
			Credentials:    []string{"notionApi", "todoistApi"},
			HasCronTrigger: true,
			NodesCount:     3,
		},
		{
			ID:           "shopify-order-fulfillment",
			Name:         "Shopify order intake and fulfillment",
			Description:  "New Shopify orders are enriched over HTTP, logged to Google Sheets, and announced on Slack.",
			NodeDisplays: []string{"Shopify Trigger", "HTTP Request", "Google Sheets", "Slack"},
			NodeTypes: []string{
				"n8n-nodes-base.shopifyTrigger",
				"n8n-nodes-base.httpRequest",
				"n8n-nodes-base.googleSheets",
				"n8n-nodes-base.slack",
			},
			Credentials:       []string{"shopifyApi", "googleSheetsOAuth2Api", "slackApi"},
			HasWebhookTrigger: true,
			NodesCount:        4,
		},
	}
}
