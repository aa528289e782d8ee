package ops

var registry = map[string]Handler{
	"compute_tax":          &ComputeTaxHandler{},
	"compare_offers":       &CompareOffersHandler{},
	"score_checklist":      &ScoreChecklistHandler{},
	"toggle_item":          &ToggleItemHandler{},
	"set_item_status":      &SetItemStatusHandler{},
	"record_visit":         &RecordVisitHandler{},
	"evaluate_return_rule": &EvaluateReturnRuleHandler{},
}

func Get(name string) (Handler, bool) {
	h, ok := registry[name]
	return h, ok
}
