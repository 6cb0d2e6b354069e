package service

import "fmt"

// User-facing reply texts. Telegram Markdown, Taglish register.
const (
	helpText = "*Welcome po! This bot helps remind you of your suguan from time to time and is currently running on a local server po.*\n\n" +
		"*Available commands:*\n" +
		"/send - _Submit your suguan po._\n" +
		"/review - _Request a review of your suguan po._\n" +
		"/chatid - _Ate will provide this to you po._\n" +
		"/info - _Submit your basic personal information po._\n" +
		"/concern - _Send your concern to the bot owner po._\n" +
		"/help - _Show this help message po._\n" +
		"/cancel - _Cancel the current operation po._\n" +
		"/guidelines - _Read more for this bot._"

	guidelinesText = "*📝 Guidelines for Using This Bot:*\n\n" +
		"▫️ *ONLINE/OFFLINE*\n" +
		"  - If you click any command and nothing happens, it means the *server is currently offline*. Please try again later po.\n" +
		"  - Being offline *only affects submissions*, but *reminders will continue to work 24/7* po.\n\n" +
		"▫️ *SUBMISSION*\n" +
		"  - Please review your *suguan* before and after submission po.\n" +
		"  - If you want to delete your submitted *suguan* or personal information, just *resubmit it* and the old data will be *automatically deleted* po.\n\n" +
		"▫️ *WIFE CHAT ID*\n" +
		"  - This is a unique feature of the bot. Once you enter your *Wife Chat ID*, the system will work at full capacity po, including reminding your wife when needed.\n" +
		"  - If you are single po, please enter *\"0\"* (or multiple zeros) for *\"Wife Chat ID\"* and write *\"None\"* for *\"Wife Name\"*.\n" +
		"  - To get your wife's Chat ID po, send the bot (@R507RemBot) to your wife and ask her to click */chatid*. Then copy that ID and send it with this format:\n" +
		"    *First Name. Last Name. Uri. Assigned Lokal. District. Housing Address. Wife Chat ID. Wife Name*\n\n" +
		"▫️ *REMINDERS (currently)*\n" +
		"  - The bot sends reminders *10 to 16 hours* before your suguan.\n" +
		"  - It also sends a reminder *2 hours before* the suguan.\n" +
		"  - If you haven't logged your suguan, the bot will remind you *twice (Monday and Tuesday)*. If still not submitted, the bot will message your wife (if provided) to remind you po.\n" +
		"  - *Future Feature:* Even if you don't enter your suguan, the bot will send default reminders *every Tuesday at 6 PM and Friday at 6 PM*.\n" +
		"  - *Future Feature:* The bot will also remind you *2 days in advance* to study a lesson and will send the lesson po.\n\n" +
		"▫️ *ERRORS*\n" +
		"  - If you encounter errors or wrong replies, please click */cancel* to reset the current operation.\n\n" +
		"▫️ *RESPONSES*\n" +
		"  - For */review-*, it's normal to take up to *1 minute* because the system is compiling information and waiting for the exact send time (sent time + 1 min).\n" +
		"  - We appreciate your patience po.\n\n" +
		"🧾 Always check this */guidelines* command po for updates."

	sendPromptText = "*Please send your suguan po (one at a time po):*\n" +
		"_Format:_ Day, Time, Lokal, Gampanin, Language\n\n" +
		"_Example:_ *Thu, 5:45AM, Green Condo, R1, Tag*\n\n" +
		"*Thanks po🙏🏻.*"

	infoPromptText = "*Please send your personal information po. It will help the system remind you more reliably po:*\n\n" +
		"_Use this format po:_ First Name. Last Name. Uri. Assigned Lokal. District. Housing Address. Wife Chat ID. Wife Name\n\n" +
		"_Example:_ *Juan. Dela Cruz. Minister. V Luna. Central. Green Condo Unit#. 5524775355. Maria*\n\n" +
		"Note: To get your wife's Chat ID po, kindly send the bot (@R507RemBot) to your wife po, then ask her to click /chatid. " +
		"Please copy that ID po and send it here so that the reminders can also be sent to her po."

	concernPromptText = "*Please write your concern or message po.*"

	concernRecordedText = "*Your message has been recorded. Please type* /submit *to send it.*"

	cancelText = "*Current operation cancelled po.*"

	scheduleSubmittedText = "*🤝Your Suguan has been successfully submitted, po!*\n\n" +
		"If you have more suguan po, feel free to send another one or more po."

	infoSubmittedText = "*🤝Your information has been recorded po!*"

	concernSubmittedText = "*🤝Your concern has been sent po!*"

	noConcernText = "*No message to submit.*"

	reviewText = "Your review request has been sent po! Please wait 1–2 minutes.\n\n" +
		"Take note that if you haven't submitted your suguan yet po or your suguan is already done, you won't receive a message.\n\n" +
		"*Thank you for patiently waiting po!🙏🏻*"

	statsText = "*Your stats request has been submitted po!*"

	yesText = "*TY po.*"

	errSavingDataText = "*⚠️ Error saving data. Please try again later po.*"

	errSavingInfoText = "*⚠️ Error saving information. Please try again later po.*"

	errSendingConcernText = "*⚠️ Error sending your concern. Please try again later po.*"

	errSavingReviewText = "*⚠️ Error saving your review request. Please try again later po.*"

	errSavingStatsText = "*⚠️ Error saving your stats request. Please try again later po.*"

	errSavingYesText = "*⚠️ Error saving your yes request. Please try again later po.*"
)

func chatIDText(chatID int64) string {
	return fmt.Sprintf("*Good day po, your chatID is:* _%d_\n\n"+
		"Ate should give you her own Chat ID po, then you can submit it po together with your information po from /info.", chatID)
}
