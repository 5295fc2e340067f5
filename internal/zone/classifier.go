package zone

import (
	"fmt"
	"strings"

	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

// Thresholds are the ruble amounts that move a contract between zones.
type Thresholds struct {
	GreenTypicalMax      float64 // typical form stays green up to here
	GreenNonTypicalMax   float64 // other forms stay green up to here
	YellowMax            float64 // above this the contract is red
	TenderRed            float64 // tenders above this are red
	SingleSupplierYellow float64 // single-supplier deals above this are yellow
	ControlYears         int     // contracts longer than this are yellow
}

// Deadlines are the legal-review terms, in working days.
type Deadlines struct {
	Standard int
	Extended int
	Urgent   int
}

// DefaultThresholds returns the amounts fixed by the approval regulation.
func DefaultThresholds() Thresholds {
	return Thresholds{
		GreenTypicalMax:      100_000,
		GreenNonTypicalMax:   50_000,
		YellowMax:            5_000_000,
		TenderRed:            3_000_000,
		SingleSupplierYellow: 100_000,
		ControlYears:         3,
	}
}

// DefaultDeadlines returns the review terms fixed by the regulation.
func DefaultDeadlines() Deadlines {
	return Deadlines{Standard: 5, Extended: 10, Urgent: 1}
}

// RedZoneCategories are deal categories that are red regardless of
// amount: strategic assets, foreign trade, financing, software and
// anything needing board approval.
var RedZoneCategories = []string{
	"Аренда вагонов", "Лизинг вагонов", "Покупка/продажа вагонов",
	"Аренда локомотивов", "Лизинг локомотивов", "Покупка/продажа локомотивов",
	"Аренда контейнеров", "Лизинг контейнеров", "Покупка/продажа контейнеров",
	"Международные перевозки (ВЭД)", "Расчеты в валюте",
	"Договор на разработку ПО", "Договор на внедрение ПО",
	"Лицензионное соглашение на ПО", "Смарт-контракт",
	"Аренда недвижимости", "Покупка недвижимости",
	"Кредитный договор", "Договор займа", "Договор залога", "Договор поручительства",
	"Договор с ОАО РЖД", "Сервисный (глобальный) договор",
	"Договор, требующий одобрения Совета директоров",
	"Трудовой договор с ТОП-менеджментом",
	"Локальный нормативный акт (ЛНА)", "Положение/Правила/Инструкция",
	"Приказ о коммерческой тайне", "Приказ о дисциплинарном взыскании",
	"Приказ о материальной ответственности",
}

// YellowZoneCategories are deal categories that always need legal review.
var YellowZoneCategories = []string{
	"Договор на регулярные (рамочные) перевозки",
	"Договор на годовые перевозки",
	"Договор ТЭУ (транспортно-экспедиционные услуги)",
	"Перевозка опасного груза", "Перевозка негабаритного груза",
	"Перевозка тяжеловесного груза", "Перевозка дорогостоящего груза",
	"Закупка у единственного поставщика",
}

// RedDocuments are document types that demand immediate legal
// escalation: claims, lawsuits, regulator requests, cargo incidents.
var RedDocuments = []string{
	"Претензия (входящая)", "Претензия (исходящая)",
	"Исковое заявление", "Судебный приказ",
	"Запрос ФНС", "Запрос ФАС", "Запрос Прокуратуры",
	"Запрос Ространснадзора", "Запрос ГИТ (трудовая инспекция)",
	"Запрос иного госоргана", "Предписание госоргана", "Требование госоргана",
	"ДТП с участием ТС компании", "Утеря груза", "Порча груза",
	"Простой, требующий юридической фиксации",
}

// Classifier assigns a contract to a traffic-light risk zone from its
// metadata alone. It is a pure rule engine: no I/O, no state, and
// every input maps to exactly one zone.
type Classifier struct {
	thresholds Thresholds
	deadlines  Deadlines

	redCategories    map[string]bool
	yellowCategories map[string]bool
	redDocuments     map[string]bool
}

// NewClassifier creates a classifier with the given thresholds and
// deadlines and the regulation's fixed category lists.
func NewClassifier(t Thresholds, d Deadlines) *Classifier {
	return &Classifier{
		thresholds:       t,
		deadlines:        d,
		redCategories:    toSet(RedZoneCategories),
		yellowCategories: toSet(YellowZoneCategories),
		redDocuments:     toSet(RedDocuments),
	}
}

// NewDefaultClassifier creates a classifier with the regulation's
// default thresholds and deadlines.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultThresholds(), DefaultDeadlines())
}

// Classify evaluates the zone rules in priority order; the first red
// rule that fires wins, then the yellow triggers accumulate, and a
// contract with no trigger at all lands in the green corridor.
func (c *Classifier) Classify(in models.AnalysisInput) models.ZoneResult {
	if in.DealCategory != "" && c.redCategories[in.DealCategory] {
		return models.ZoneResult{
			Zone:          models.ZoneRed,
			Reason:        fmt.Sprintf("%q is always a red-zone deal category", in.DealCategory),
			RedFlags:      []string{"strategic deal category: " + in.DealCategory},
			RequiresLegal: true,
			Responsible:   "legal department",
			DeadlineDays:  c.deadlines.Extended,
			ApprovalRoute: []string{"legal department at the planning stage", "joint drafting"},
			RequiredDocs:  []string{"task description", "draft contract", "statement of work", "commercial proposal", "counterparty profile"},
		}
	}

	if in.DocumentType != "" && c.redDocuments[in.DocumentType] {
		return models.ZoneResult{
			Zone:          models.ZoneRed,
			Reason:        fmt.Sprintf("%q is always a red-zone document", in.DocumentType),
			RedFlags:      []string{"critical document: " + in.DocumentType},
			RequiresLegal: true,
			Responsible:   "legal department",
			DeadlineDays:  c.deadlines.Urgent,
			ApprovalRoute: []string{"legal department immediately"},
			RequiredDocs:  []string{"incoming document", "related correspondence"},
			Warnings:      []string{"escalate to the legal department immediately"},
		}
	}

	if in.IsTender && in.TenderAmount > c.thresholds.TenderRed {
		return models.ZoneResult{
			Zone:          models.ZoneRed,
			Reason:        fmt.Sprintf("tender above %.0f RUB", c.thresholds.TenderRed),
			RedFlags:      []string{fmt.Sprintf("tender for %.0f RUB", in.TenderAmount)},
			RequiresLegal: true,
			Responsible:   "legal department",
			DeadlineDays:  c.deadlines.Extended,
			ApprovalRoute: []string{"legal department at the planning stage", "joint drafting"},
			RequiredDocs:  []string{"tender documentation", "draft contract", "counterparty profile"},
		}
	}

	if in.Amount > c.thresholds.YellowMax {
		return models.ZoneResult{
			Zone:          models.ZoneRed,
			Reason:        fmt.Sprintf("amount %.0f RUB above %.0f", in.Amount, c.thresholds.YellowMax),
			RedFlags:      []string{fmt.Sprintf("amount above %.0f RUB", c.thresholds.YellowMax)},
			RequiresLegal: true,
			Responsible:   "legal department",
			DeadlineDays:  c.deadlines.Extended,
			ApprovalRoute: []string{"legal department at the planning stage", "joint drafting"},
			RequiredDocs:  []string{"draft contract", "statement of work", "commercial proposal", "counterparty profile"},
		}
	}

	var reasons, yellowFlags, greenFlags []string

	if in.DealCategory != "" && c.yellowCategories[in.DealCategory] {
		reasons = append(reasons, in.DealCategory)
		yellowFlags = append(yellowFlags, in.DealCategory)
	}
	if in.SingleSupplier && in.Amount > c.thresholds.SingleSupplierYellow {
		reasons = append(reasons, fmt.Sprintf("single supplier above %.0f RUB", c.thresholds.SingleSupplierYellow))
		yellowFlags = append(yellowFlags, "single supplier")
	}
	if in.ContractYears > c.thresholds.ControlYears {
		reasons = append(reasons, fmt.Sprintf("term above the %d-year control period", c.thresholds.ControlYears))
		yellowFlags = append(yellowFlags, fmt.Sprintf("%d-year contract", in.ContractYears))
	}

	switch in.DocumentForm {
	case models.FormTypical:
		if in.Amount > c.thresholds.GreenTypicalMax {
			reasons = append(reasons, fmt.Sprintf("typical form above %.0f RUB", c.thresholds.GreenTypicalMax))
			yellowFlags = append(yellowFlags, fmt.Sprintf("typical form for %.0f RUB", in.Amount))
		} else {
			greenFlags = append(greenFlags, fmt.Sprintf("typical form within %.0f RUB", c.thresholds.GreenTypicalMax))
		}
	case models.FormCounterparty, models.FormFree, models.FormSelfDeveloped:
		if in.Amount > c.thresholds.GreenNonTypicalMax {
			reasons = append(reasons, fmt.Sprintf("non-typical form above %.0f RUB", c.thresholds.GreenNonTypicalMax))
			yellowFlags = append(yellowFlags, fmt.Sprintf("non-typical form above %.0f RUB", c.thresholds.GreenNonTypicalMax))
		} else {
			greenFlags = append(greenFlags, fmt.Sprintf("non-typical form within %.0f RUB", c.thresholds.GreenNonTypicalMax))
		}
	case models.FormModifiedTF:
		switch {
		case in.ChangesEssential:
			reasons = append(reasons, "essential terms of the typical form changed")
			yellowFlags = append(yellowFlags, "essential changes to the typical form")
		case in.Amount > c.thresholds.GreenNonTypicalMax:
			reasons = append(reasons, fmt.Sprintf("modified typical form above %.0f RUB", c.thresholds.GreenNonTypicalMax))
			yellowFlags = append(yellowFlags, fmt.Sprintf("modified typical form above %.0f RUB", c.thresholds.GreenNonTypicalMax))
		default:
			greenFlags = append(greenFlags, fmt.Sprintf("modified typical form within %.0f RUB", c.thresholds.GreenNonTypicalMax))
		}
	}

	if len(reasons) > 0 {
		return models.ZoneResult{
			Zone:          models.ZoneYellow,
			Reason:        strings.Join(reasons, "; "),
			YellowFlags:   yellowFlags,
			GreenFlags:    greenFlags,
			RequiresLegal: true,
			Responsible:   "legal department (review)",
			DeadlineDays:  c.deadlines.Standard,
			ApprovalRoute: []string{"initiator", "document workflow system", fmt.Sprintf("legal department (%d days)", c.deadlines.Standard), "signing"},
			RequiredDocs:  []string{"draft contract", "statement of work", "commercial proposal", "counterparty profile"},
			Warnings:      []string{"signing is forbidden without legal sign-off"},
		}
	}

	return models.ZoneResult{
		Zone:            models.ZoneGreen,
		Reason:          "green corridor",
		GreenFlags:      greenFlags,
		RequiresLegal:   false,
		Responsible:     "initiator",
		DeadlineDays:    0,
		ApprovalRoute:   []string{"initiator", "manager", "signing"},
		RequiredDocs:    []string{"draft contract"},
		Recommendations: []string{"use the current typical form without changes"},
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
