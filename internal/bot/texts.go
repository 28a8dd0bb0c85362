package bot

import (
	"fmt"

	"github.com/peymanh/kharjbot/internal/expense"
	"github.com/peymanh/kharjbot/internal/format"
)

// User-facing copy. The audience is Persian-speaking; amounts are formatted
// with comma separators, Markdown markup throughout.
const (
	textWelcome = `👋 **به دستیار هوشمند مدیریت هزینه خوش آمدید!**

من به شما کمک می‌کنم هزینه‌های خود را ثبت کنید، بودجه‌بندی کنید و گزارش‌های مالی بگیرید.

**🚀 روش‌های ثبت هزینه:**
1️⃣ **دستی:** مبلغ و توضیحات را تایپ کنید.
   • _مثال:_ ` + "`50000 ناهار با علی`" + `
   • _مثال:_ ` + "`20000 اسنپ`" + `

2️⃣ **پیامک بانکی:** پیامک‌های برداشت وجه را برای من فوروارد کنید. من مبلغ را خودکار تشخیص می‌دهم!

**💰 مدیریت بودجه:**
• یک سقف ماهانه تعیین کنید تا در صورت عبور از آن به شما هشدار دهم.
• از دکمه **"تعیین بودجه"** در منو استفاده کنید.

**📊 دستورات:**
/start - منوی اصلی
/budget - تنظیم سقف بودجه
/help - نمایش راهنما

👇 **از دکمه‌های زیر برای مشاهده گزارش‌ها استفاده کنید:**`

	textBudgetPrompt = "💰 **تنظیم بودجه ماهانه**\n\nلطفا کل مبلغ بودجه این ماه خود را تایپ کنید (مثلا: `5000000`):"

	textInvalidBudget = "⚠️ مبلغ نامعتبر است. لطفاً عددی مانند `5000000` وارد کنید:"

	textInvalidAmount = "⚠️ عدد نامعتبر است."

	textFormatHint = "⚠️ فرمت ناخوانا. تلاش کنید: `50000 ناهار`\nیا تنظیم بودجه با: `/budget 100000`"

	textSessionExpired = "⚠️ نشست منقضی شده است. لطفا دوباره تلاش کنید."

	textSaveFailed = "❌ خطا در ذخیره هزینه."

	textNoMonthData = "📭 داده‌ای برای این ماه موجود نیست."

	textChartsProgress = "📊 در حال تولید نمودارها..."

	captionCategoryPie = "هزینه بر اساس دسته‌بندی"
	captionDailyBar    = "روند هزینه روزانه"

	textNoExpenses = "📭 هزینه‌ای ثبت نشده است."

	textPickItem = "✏️ **برای ویرایش یا حذف، روی آیتم بزنید:**"

	textItemNotFound = "❌ آیتم پیدا نشد."

	textDeleted = "🗑 حذف شد."

	textNewAmountPrompt = "🔢 مبلغ جدید را وارد کنید:"

	textNewDescPrompt = "📝 توضیحات جدید را وارد کنید:"

	textClearMenu = "🗑 **گزینه‌های حذف**\nچه چیزی را می‌خواهید پاک کنید؟"

	textClearFailed = "❌ خطا در حذف اطلاعات."

	textCancelled = "✅ عملیات لغو شد."

	textAddHelp = "تایپ کنید: `50000 ناهار`\nیا تنظیم بودجه: `/budget 5000000`"

	textGenericError = "❌ خطایی رخ داد. لطفا دوباره تلاش کنید."

	textUnsupportedAction = "⚠️ عملیات پشتیبانی نمی‌شود."
)

func textBudgetSet(budget float64) string {
	return fmt.Sprintf("✅ **بودجه تنظیم شد!**\nسقف ماهانه: %s", format.Money(budget))
}

func textBudgetUpdated(budget float64) string {
	return fmt.Sprintf("✅ **بودجه بروزرسانی شد!**\nسقف ماهانه: %s", format.Money(budget))
}

func textBudgetCurrent(budget float64) string {
	return fmt.Sprintf("📊 **بودجه فعلی شما:** %s\n\nبرای تغییر آن، دکمه \"تعیین بودجه\" را بزنید یا تایپ کنید:\n`/budget 6000000`", format.Money(budget))
}

func textBudgetUnset() string {
	return "⚠️ **بودجه‌ای تنظیم نشده است.**\n\nبرای تنظیم، دکمه \"تعیین بودجه\" را بزنید یا تایپ کنید:\n`/budget 5000000`"
}

func textCategoryPrompt(e expense.Entry) string {
	if e.AutoDetected {
		return fmt.Sprintf("📩 **پیامک شناسایی شد!**\n💰 مبلغ: %s\n📝 بابت: %s\n\nیک دسته‌بندی انتخاب کنید:",
			format.Money(e.Amount), e.Description)
	}
	return fmt.Sprintf("💰 مبلغ: %s\n📝 بابت: %s\n\nیک دسته‌بندی انتخاب کنید:",
		format.Money(e.Amount), e.Description)
}

func textSaved(amount float64, description, category string, status *expense.BudgetStatus) string {
	text := fmt.Sprintf("✅ **ذخیره شد!**\n%s | %s | %s", format.Money(amount), description, category)
	if status != nil {
		text += fmt.Sprintf("\n\n📊 **مصرف بودجه:** %%%s", format.Percent(status.Percent))
		if status.Alert != "" {
			text += "\n\n" + status.Alert
		}
	}
	return text
}

func textAmountChanged(amount float64) string {
	return fmt.Sprintf("✅ مبلغ به %s تغییر یافت.", format.Money(amount))
}

func textDescChanged(description string) string {
	return fmt.Sprintf("✅ توضیحات به \"%s\" تغییر یافت.", description)
}

func textItemSelected(description string, amount float64) string {
	return fmt.Sprintf("انتخاب شد: **%s** (%s)", description, format.Money(amount))
}

func textClearConfirm(w Window) string {
	switch w {
	case WindowToday:
		return "آیا مطمئنید که می‌خواهید هزینه‌های **امروز** را حذف کنید؟"
	case WindowWeek:
		return "آیا مطمئنید که می‌خواهید هزینه‌های **این هفته** را حذف کنید؟"
	case WindowMonth:
		return "آیا مطمئنید که می‌خواهید هزینه‌های **این ماه** را حذف کنید؟"
	default:
		return "⚠️ **خطر:** آیا مطمئنید که می‌خواهید **کل تاریخچه** را حذف کنید؟"
	}
}

func textCleared(count int64, w Window) string {
	return fmt.Sprintf("🗑 **حذف شد!**\nتعداد %d مورد از تاریخچه %s پاک شد.", count, w.Label())
}

func textTodayTotal(total float64) string {
	return fmt.Sprintf("📅 **امروز:** %s", format.Money(total))
}

func textMonthTotal(total float64) string {
	return fmt.Sprintf("🗓 **این ماه:** %s", format.Money(total))
}
