package template

import "github.com/ruslamp94/legal-traffic-light/pkg/models"

// Builtin returns the typical form definitions shipped with the
// system. The section texts, keywords and patterns target Russian
// contracts; patterns avoid \w because RE2 limits it to ASCII.
func Builtin() []models.TypicalForm {
	return []models.TypicalForm{
		serviceForm(),
		supplyForm(),
		wagonRentForm(),
		itServicesForm(),
	}
}

func serviceForm() models.TypicalForm {
	return models.TypicalForm{
		Name:    "Типовая форма договора оказания услуг",
		Code:    "ТФ-УСЛ-001",
		Version: "3.0",
		Sections: []models.TemplateSection{
			{
				Name:     "1. ПРЕДМЕТ ДОГОВОРА",
				Required: true,
				Template: "1.1. Исполнитель обязуется оказать Заказчику услуги, указанные в Техническом задании (Приложение №1), а Заказчик обязуется принять и оплатить оказанные услуги.",
				Keywords: []string{"предмет", "услуги", "обязуется", "оказать", "принять", "оплатить", "техническое задание"},
			},
			{
				Name:     "2. СТОИМОСТЬ И ПОРЯДОК РАСЧЕТОВ",
				Required: true,
				Template: "2.1. Стоимость услуг составляет _______ рублей. 2.2. Оплата производится в течение 10 рабочих дней с даты подписания Акта.",
				Keywords: []string{"стоимость", "оплата", "рабочих дней", "акт", "ндс", "расчет"},
				RiskRules: []models.RiskRule{
					{Pattern: `предоплат.*(?:[3-9]\d|100)\s*%`, Severity: models.SeverityRed, Issue: "prepayment above 30%"},
					{Pattern: `оплата.*(?:1|2|3)\s*(?:рабоч|календарн)`, Severity: models.SeverityYellow, Issue: "payment term too short"},
				},
			},
			{
				Name:     "3. СРОКИ ОКАЗАНИЯ УСЛУГ",
				Required: true,
				Template: "3.1. Срок оказания услуг: с «___» ________ 202__ г. по «___» ________ 202__ г.",
				Keywords: []string{"срок", "оказания", "услуг", "период"},
			},
			{
				Name:     "4. ПОРЯДОК СДАЧИ-ПРИЕМКИ УСЛУГ",
				Required: true,
				Template: "4.1. По завершении оказания услуг Исполнитель направляет Заказчику Акт в 2-х экземплярах. 4.2. Заказчик в течение 5 рабочих дней обязан подписать его или направить мотивированный отказ.",
				Keywords: []string{"приемка", "акт", "сдача", "рабочих дней", "мотивированный отказ"},
				RiskRules: []models.RiskRule{
					{Pattern: `(?:1|2)\s*(?:рабоч|календарн).*(?:подпис|приня)`, Severity: models.SeverityYellow, Issue: "acceptance term too short"},
				},
			},
			{
				Name:     "5. ПРАВА И ОБЯЗАННОСТИ СТОРОН",
				Required: true,
				Template: "5.1. Исполнитель обязан оказать услуги надлежащего качества. 5.2. Заказчик обязан своевременно оплатить услуги.",
				Keywords: []string{"права", "обязанности", "исполнитель", "заказчик", "обязан"},
			},
			{
				Name:     "6. ОТВЕТСТВЕННОСТЬ СТОРОН",
				Required: true,
				Template: "6.1. За нарушение сроков оплаты неустойка 0,1% за каждый день просрочки, но не более 10%. 6.2. За нарушение сроков оказания услуг неустойка 0,1% за каждый день просрочки, но не более 10%.",
				Keywords: []string{"ответственность", "неустойка", "просрочка", "штраф"},
				RiskRules: []models.RiskRule{
					{Pattern: `ответственност.*ограничен.*(?:последн|месяц|платеж)`, Severity: models.SeverityRed, Issue: "liability capped at the last payment"},
					{Pattern: `не\s+(?:несет|отвечает).*(?:косвенн|упущенн)`, Severity: models.SeverityRed, Issue: "indirect damages excluded"},
					{Pattern: `неустойк.*(?:0[,.]?[5-9]|[1-9][,.]?\d)\s*%`, Severity: models.SeverityRed, Issue: "penalty above 0.3% per day"},
					{Pattern: `(?:полн[а-яё]+|неограничен[а-яё]+).*ответственност`, Severity: models.SeverityRed, Issue: "unlimited liability"},
				},
			},
			{
				Name:     "7. КОНФИДЕНЦИАЛЬНОСТЬ",
				Required: true,
				Template: "7.1. Стороны обязуются не разглашать конфиденциальную информацию в течение 3 лет после прекращения Договора.",
				Keywords: []string{"конфиденциальность", "разглашать", "информация", "секрет"},
				RiskRules: []models.RiskRule{
					{Pattern: `(?:штраф|неустойк).*конфиденциальност.*(?:[5-9]|1\d)\s*(?:000\s*000|млн)`, Severity: models.SeverityRed, Issue: "excessive confidentiality penalty (over 5M)"},
				},
			},
			{
				Name:     "8. ИНТЕЛЛЕКТУАЛЬНАЯ СОБСТВЕННОСТЬ",
				Required: false,
				Template: "8.1. Исключительные права на результаты переходят к Заказчику с момента подписания Акта.",
				Keywords: []string{"интеллектуальная", "собственность", "права", "результат", "исключительные"},
				RiskRules: []models.RiskRule{
					{Pattern: `(?:исключительн[а-яё]+\s+)?прав[а-яё]+.*(?:принадлежат?|остают?ся|переходят?).*исполнител`, Severity: models.SeverityRed, Issue: "results remain with the contractor"},
					{Pattern: `неисключительн[а-яё]+\s+лицензи`, Severity: models.SeverityYellow, Issue: "customer only gets a non-exclusive license"},
				},
			},
			{
				Name:     "9. СРОК ДЕЙСТВИЯ И РАСТОРЖЕНИЕ",
				Required: true,
				Template: "9.1. Договор действует до полного исполнения обязательств. 9.2. Любая Сторона вправе расторгнуть Договор с уведомлением за 30 дней.",
				Keywords: []string{"срок", "действия", "расторжение", "уведомление", "односторонн"},
				RiskRules: []models.RiskRule{
					{Pattern: `исполнитель.*(?:вправе|имеет\s+право).*односторонн.*расторг.*(?:[1-9]|1[0-4])\s*(?:дн|календарн)`, Severity: models.SeverityRed, Issue: "contractor may terminate on short notice (under 15 days)"},
					{Pattern: `заказчик.*только.*(?:существенн|нарушен)`, Severity: models.SeverityRed, Issue: "customer termination rights restricted"},
					{Pattern: `автоматическ[а-яё]+\s+(?:пролонгац|продлен)`, Severity: models.SeverityYellow, Issue: "automatic prolongation"},
				},
			},
			{
				Name:     "10. РАЗРЕШЕНИЕ СПОРОВ",
				Required: true,
				Template: "10.1. Споры разрешаются путем переговоров. 10.2. При недостижении согласия — в Арбитражном суде г. Москвы.",
				Keywords: []string{"споры", "арбитражный", "суд", "разногласия", "переговоры"},
				RiskRules: []models.RiskRule{
					{Pattern: `арбитражн[а-яё]+\s+суд[а-яё]*.*(?:санкт-петербург|спб|питер)`, Severity: models.SeverityYellow, Issue: "venue in Saint Petersburg"},
					{Pattern: `третейск[а-яё]+\s+суд`, Severity: models.SeverityYellow, Issue: "arbitration clause"},
				},
			},
			{
				Name:     "11. ФОРС-МАЖОР",
				Required: true,
				Template: "11.1. Стороны освобождаются от ответственности при обстоятельствах непреодолимой силы.",
				Keywords: []string{"форс-мажор", "непреодолимой силы", "обстоятельства"},
			},
			{
				Name:     "12. ЗАКЛЮЧИТЕЛЬНЫЕ ПОЛОЖЕНИЯ",
				Required: true,
				Template: "12.1. Договор составлен в двух экземплярах. 12.2. Приложения являются неотъемлемой частью Договора.",
				Keywords: []string{"заключительные", "экземпляр", "приложения", "изменения"},
			},
			{
				Name:     "13. РЕКВИЗИТЫ И ПОДПИСИ СТОРОН",
				Required: true,
				Template: "ЗАКАЗЧИК: АО «НПК»... ИСПОЛНИТЕЛЬ: ...",
				Keywords: []string{"реквизиты", "подписи", "заказчик", "исполнитель", "инн", "адрес"},
			},
		},
		GlobalRiskRules: []models.RiskRule{
			{Pattern: `односторонн[а-яё]+.*изменен[а-яё]+.*(?:цен|стоимост|тариф)`, Severity: models.SeverityRed, Issue: "counterparty may change the price unilaterally"},
			{Pattern: `субподряд.*без.*(?:согласи|уведомлени)`, Severity: models.SeverityYellow, Issue: "subcontracting without customer consent"},
			{Pattern: `(?:usd|eur|евро|доллар|валют|у\.е\.)`, Severity: models.SeverityYellow, Issue: "foreign currency clause"},
		},
	}
}

func supplyForm() models.TypicalForm {
	return models.TypicalForm{
		Name:    "Типовая форма договора поставки",
		Code:    "ТФ-ПОС-001",
		Version: "2.0",
		Sections: []models.TemplateSection{
			{Name: "1. ПРЕДМЕТ ДОГОВОРА", Required: true, Template: "Поставщик обязуется передать товар.", Keywords: []string{"предмет", "поставщик", "покупатель", "товар"}},
			{Name: "2. КАЧЕСТВО И КОМПЛЕКТНОСТЬ", Required: true, Template: "Качество по ГОСТ.", Keywords: []string{"качество", "комплектность", "гост"}},
			{
				Name: "3. ЦЕНА И РАСЧЕТЫ", Required: true, Template: "Цена в Спецификации.", Keywords: []string{"цена", "оплата", "расчет"},
				RiskRules: []models.RiskRule{
					{Pattern: `предоплат.*(?:[3-9]\d|100)\s*%`, Severity: models.SeverityRed, Issue: "prepayment above 30%"},
				},
			},
			{Name: "4. СРОКИ ПОСТАВКИ", Required: true, Template: "Поставка по графику.", Keywords: []string{"срок", "поставка"}},
			{Name: "5. ПОРЯДОК ПРИЕМКИ", Required: true, Template: "Приемка по П-6, П-7.", Keywords: []string{"приемка", "п-6", "п-7"}},
			{Name: "6. ОТВЕТСТВЕННОСТЬ", Required: true, Template: "Неустойка 0,1%.", Keywords: []string{"ответственность", "неустойка"}},
			{Name: "7. ГАРАНТИИ", Required: true, Template: "Гарантийный срок.", Keywords: []string{"гарантия"}},
			{Name: "8. ФОРС-МАЖОР", Required: true, Template: "Непреодолимая сила.", Keywords: []string{"форс-мажор"}},
			{Name: "9. СПОРЫ", Required: true, Template: "Арбитраж Москвы.", Keywords: []string{"споры", "арбитражный"}},
			{Name: "10. РЕКВИЗИТЫ", Required: true, Template: "Реквизиты сторон.", Keywords: []string{"реквизиты", "подписи"}},
		},
		GlobalRiskRules: []models.RiskRule{
			{Pattern: `переход.*риск.*до.*передач`, Severity: models.SeverityRed, Issue: "risk passes before the goods are handed over"},
		},
	}
}

func wagonRentForm() models.TypicalForm {
	return models.TypicalForm{
		Name:    "Типовая форма договора аренды вагонов",
		Code:    "ТФ-АРВ-001",
		Version: "2.0",
		Sections: []models.TemplateSection{
			{Name: "1. ПРЕДМЕТ ДОГОВОРА", Required: true, Template: "Аренда вагонов.", Keywords: []string{"предмет", "арендодатель", "арендатор", "вагон"}},
			{Name: "2. ПЕРЕЧЕНЬ ВАГОНОВ", Required: true, Template: "Список вагонов.", Keywords: []string{"перечень", "номер", "вагон"}},
			{Name: "3. АРЕНДНАЯ ПЛАТА", Required: true, Template: "Ставка за сутки.", Keywords: []string{"аренда", "ставка", "плата"}},
			{Name: "4. ПЕРЕДАЧА И ВОЗВРАТ", Required: true, Template: "Акт передачи.", Keywords: []string{"передача", "возврат", "акт"}},
			{Name: "5. ОБЯЗАННОСТИ АРЕНДАТОРА", Required: true, Template: "Использование по назначению.", Keywords: []string{"обязанности", "арендатор"}},
			{
				Name: "6. ОТВЕТСТВЕННОСТЬ", Required: true, Template: "Ответственность за утрату.", Keywords: []string{"ответственность", "сохранность", "утрата"},
				RiskRules: []models.RiskRule{
					{Pattern: `(?:полн[а-яё]+|неограничен[а-яё]+).*ответственност.*утрат`, Severity: models.SeverityRed, Issue: "unlimited liability for loss"},
					{Pattern: `штраф.*простой.*(?:[2-9]\d{3}|[1-9]\d{4})`, Severity: models.SeverityRed, Issue: "demurrage penalty above 2000 RUB per day"},
				},
			},
			{Name: "7. СТРАХОВАНИЕ", Required: true, Template: "Страховка.", Keywords: []string{"страхование"}},
			{Name: "8. СРОК АРЕНДЫ", Required: true, Template: "Срок аренды.", Keywords: []string{"срок", "аренда"}},
			{Name: "9. СПОРЫ", Required: true, Template: "Арбитраж.", Keywords: []string{"споры", "арбитражный"}},
			{Name: "10. РЕКВИЗИТЫ", Required: true, Template: "Реквизиты.", Keywords: []string{"реквизиты", "подписи"}},
		},
	}
}

func itServicesForm() models.TypicalForm {
	return models.TypicalForm{
		Name:    "Типовая форма договора на IT-услуги",
		Code:    "ТФ-ИТ-001",
		Version: "1.0",
		Sections: []models.TemplateSection{
			{Name: "1. ПРЕДМЕТ", Required: true, Template: "IT-услуги.", Keywords: []string{"предмет", "it", "услуги"}},
			{
				Name: "2. SLA", Required: true, Template: "Уровень сервиса.", Keywords: []string{"sla", "уровень", "сервис"},
				RiskRules: []models.RiskRule{
					{Pattern: `(?:нет|отсутств|без).*sla`, Severity: models.SeverityRed, Issue: "no SLA defined"},
				},
			},
			{Name: "3. СТОИМОСТЬ", Required: true, Template: "Стоимость.", Keywords: []string{"стоимость", "оплата"}},
			{
				Name: "4. ПРАВА НА РЕЗУЛЬТАТЫ", Required: true, Template: "Права.", Keywords: []string{"права", "результат"},
				RiskRules: []models.RiskRule{
					{Pattern: `прав[а-яё]+.*(?:принадлежат?|остают?ся).*исполнител`, Severity: models.SeverityRed, Issue: "software rights remain with the contractor"},
				},
			},
			{Name: "5. ЗАЩИТА ДАННЫХ", Required: true, Template: "152-ФЗ.", Keywords: []string{"защита", "данные", "персональные"}},
			{Name: "6. ПОДДЕРЖКА", Required: true, Template: "Поддержка.", Keywords: []string{"поддержка"}},
			{Name: "7. ОТВЕТСТВЕННОСТЬ", Required: true, Template: "Ответственность.", Keywords: []string{"ответственность"}},
			{Name: "8. СРОК И РАСТОРЖЕНИЕ", Required: true, Template: "Срок.", Keywords: []string{"срок", "расторжение"}},
			{Name: "9. РЕКВИЗИТЫ", Required: true, Template: "Реквизиты.", Keywords: []string{"реквизиты", "подписи"}},
		},
	}
}
