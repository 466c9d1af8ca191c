package apply_weekly_template

// DayInput конфигурация одного дня недели в запросе
// Слоты дня задаются либо явным списком Slots, либо именем пресета
// (morning, afternoon, evening, all); явный список имеет приоритет
type DayInput struct {
	Enabled bool
	Slots   []string
	Preset  *string
}

// Request модель запроса на применение недельного шаблона
type Request struct {
	PhotographerID int64
	UserID         int64
	Days           []DayInput // Ровно 7 записей: индекс 0 = воскресенье ... 6 = суббота
	CopyFromDay    *int       // Перед проекцией скопировать слоты этого дня во все включенные дни
	HorizonMonths  int        // Горизонт проекции: 1, 2, 3, 6 или 12 месяцев
}

// Response модель ответа: итог проекции шаблона на окно дат
type Response struct {
	PhotographerID int64  `json:"photographerId"`
	From           string `json:"from"`         // Первая дата окна проекции
	To             string `json:"to"`           // Последняя дата окна проекции
	DatesWritten   int    `json:"datesWritten"` // Дат перезаписано шаблоном
	DatesRemoved   int    `json:"datesRemoved"` // Дат удалено (выключенные дни недели)
}
