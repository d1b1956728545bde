package dialog

// User-facing dialog texts. Kept in one place so the dialog flow reads as
// pure control logic.
const (
	msgGreeting      = "Привет! Давайте подберем курс для вашего ребенка. Как зовут вашего ребенка?"
	msgAskAgeFmt     = "Отлично, %s! Сколько лет вашему ребенку?"
	msgAgeOutOfRange = "Возраст должен быть от 6 до 18 лет. Пожалуйста, введите корректный возраст."
	msgAgeNotNumber  = "Пожалуйста, введите число."
	msgAskInterests  = "Чем увлекается ваш ребенок? (например, программирование, дизайн, математика и т.д.)"
	msgAskParentName = "Как вас зовут? (Имя родителя)"
	msgAskPhone      = "Укажите ваш номер телефона для связи (начинается на +7 или 8):"
	msgBadPhone      = "Номер телефона должен начинаться на +7 или 8. Пожалуйста, введите корректный номер."
	msgNoCourses     = "К сожалению, для вашего возраста нет доступных курсов."
	msgChooseCourse  = "Выберите курс, который вам интересен:"
	msgChooseLoc     = "Выберите удобную для вас локацию:"
	msgConfirmFmt    = "Вы выбрали курс:\n%s\n%s\n\nХотите записаться на пробное занятие?"
	msgConfirmLocFmt = "Вы выбрали курс:\n%s\n%s\n\nЛокация: %s, %s\n\nХотите записаться на пробное занятие?"
	msgBooked        = "Спасибо! Мы свяжемся с вами для уточнения деталей."
	msgDeclined      = "Хорошо, если передумаете, всегда можете вернуться и записаться позже."
	msgExited        = "Диалог завершен. Если хотите начать заново, напишите /start."
	msgCancelled     = "Диалог прерван. Если хотите начать заново, напишите /start."
	msgStaleAction   = "Это действие уже недоступно."
	msgUseButtons    = "Пожалуйста, воспользуйтесь кнопками выше."
	msgStartHint     = "Чтобы записаться на пробное занятие, отправьте /start."
	msgGenericError  = "Произошла ошибка. Пожалуйста, попробуйте еще раз."
	msgCommitError   = "Не удалось сохранить запись. Пожалуйста, начните заново с команды /start."
)

// Button labels and relevance markers.
const (
	btnExitLabel = "❌ Выйти"
	btnYesLabel  = "Да"
	btnNoLabel   = "Нет"

	markHighTier     = "🔥 "
	markRelevantTier = "⭐ "
	markDistrict     = "📍 "
)

// Callback tokens.
const (
	tokenExit       = "exit"
	tokenConfirmYes = "confirm_yes"
	tokenConfirmNo  = "confirm_no"

	coursePrefix   = "course_"
	locationPrefix = "loc_"
	districtPrefix = "district_"
)
