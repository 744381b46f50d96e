package emotion

// cannedReplies 是每个类别的固定回复，远程生成失败时的最终兜底。
var cannedReplies = [numCategories]string{
	Joy:     "That's wonderful to hear! I'm glad you're feeling positive. 😊 What's bringing you joy today?",
	Sadness: "I hear you, and it's okay to feel this way. 💙 Would you like to talk about what's making you feel down?",
	Anxiety: "It sounds like you're dealing with a lot right now. Remember, it's okay to take things one step at a time. I'm here to listen. 🤗",
	Anger:   "I can sense your frustration. It's completely valid to feel this way. Would you like to talk about what's bothering you?",
	Neutral: "I'm here to listen and support you. How are you feeling today?",
}

// CannedReply returns the fixed supportive reply for c.
func CannedReply(c Category) string {
	if !c.Valid() {
		return cannedReplies[Neutral]
	}
	return cannedReplies[c]
}
