package domain

// Platform is a publish target in the catalog.
type Platform struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PlatformRegistry is the immutable catalog of supported publish targets,
// built once at startup and injected where needed.
type PlatformRegistry []Platform

// DefaultPlatformRegistry returns the production platform catalog.
func DefaultPlatformRegistry() PlatformRegistry {
	return PlatformRegistry{
		{Key: "instagram", Name: "Instagram", URL: "https://instagram.com"},
		{Key: "facebook", Name: "Facebook", URL: "https://facebook.com"},
		{Key: "youtube", Name: "YouTube", URL: "https://youtube.com"},
		{Key: "tiktok", Name: "TikTok", URL: "https://www.tiktok.com"},
		{Key: "x", Name: "X", URL: "https://x.com"},
		{Key: "threads", Name: "Threads", URL: "https://threads.net"},
		{Key: "linkedin", Name: "LinkedIn", URL: "https://linkedin.com"},
		{Key: "pinterest", Name: "Pinterest", URL: "https://pinterest.com"},
		{Key: "snapchat", Name: "Snapchat", URL: "https://www.snapchat.com"},
		{Key: "reddit", Name: "Reddit", URL: "https://reddit.com"},
		{Key: "twitch", Name: "Twitch", URL: "https://twitch.tv"},
		{Key: "discord", Name: "Discord", URL: "https://discord.com"},
		{Key: "spotify", Name: "Spotify", URL: "https://spotify.com"},
		{Key: "medium", Name: "Medium", URL: "https://medium.com"},
		{Key: "substack", Name: "Substack", URL: "https://substack.com"},
		{Key: "vimeo", Name: "Vimeo", URL: "https://vimeo.com"},
		{Key: "dribbble", Name: "Dribbble", URL: "https://dribbble.com"},
		{Key: "behance", Name: "Behance", URL: "https://behance.net"},
		{Key: "producthunt", Name: "Product Hunt", URL: "https://www.producthunt.com"},
		{Key: "hackernews", Name: "Hacker News", URL: "https://news.ycombinator.com"},
		{Key: "gumroad", Name: "Gumroad", URL: "https://gumroad.com"},
		{Key: "shopify", Name: "Shopify", URL: "https://shopify.com"},
		{Key: "amazon", Name: "Amazon", URL: "https://amazon.com"},
		{Key: "primevideo", Name: "Prime Video", URL: "https://primevideo.com"},
		{Key: "bluesky", Name: "Bluesky", URL: "https://bsky.app"},
		{Key: "mastodon", Name: "Mastodon", URL: "https://joinmastodon.org"},
		{Key: "quora", Name: "Quora", URL: "https://quora.com"},
		{Key: "vk", Name: "VK", URL: "https://vk.com"},
		{Key: "ok", Name: "Odnoklassniki", URL: "https://ok.ru"},
		{Key: "wechat", Name: "WeChat", URL: "https://www.wechat.com"},
		{Key: "weibo", Name: "Weibo", URL: "https://weibo.com"},
		{Key: "kakaotalk", Name: "KakaoTalk", URL: "https://www.kakaocorp.com"},
		{Key: "line", Name: "LINE", URL: "https://line.me"},
		{Key: "telegram", Name: "Telegram", URL: "https://telegram.org"},
		{Key: "signal", Name: "Signal", URL: "https://signal.org"},
		{Key: "whatsapp", Name: "WhatsApp", URL: "https://whatsapp.com"},
		{Key: "rss", Name: "RSS", URL: "https://rss.com"},
		{Key: "snapchat_spotlight", Name: "Snap Spotlight", URL: "https://www.snapchat.com/spotlight"},
		{Key: "notion", Name: "Notion", URL: "https://notion.so"},
		{Key: "figma", Name: "Figma", URL: "https://figma.com"},
		{Key: "devto", Name: "Dev.to", URL: "https://dev.to"},
		{Key: "hashnode", Name: "Hashnode", URL: "https://hashnode.com"},
		{Key: "codepen", Name: "CodePen", URL: "https://codepen.io"},
		{Key: "codesandbox", Name: "CodeSandbox", URL: "https://codesandbox.io"},
		{Key: "replit", Name: "Replit", URL: "https://replit.com"},
		{Key: "kaggle", Name: "Kaggle", URL: "https://kaggle.com"},
		{Key: "drone", Name: "Drone", URL: "https://drone.io"},
		{Key: "gitlab", Name: "GitLab", URL: "https://gitlab.com"},
		{Key: "github", Name: "GitHub", URL: "https://github.com"},
		{Key: "bitbucket", Name: "Bitbucket", URL: "https://bitbucket.org"},
		{Key: "stackoverflow", Name: "Stack Overflow", URL: "https://stackoverflow.com"},
	}
}
