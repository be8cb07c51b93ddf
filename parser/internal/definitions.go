package internal

import (
	"github.com/adhocore/gronx"
	"github.com/gclaussn/go-bpmn-parser/model"
)

func (c *converter) convertCategories(categories oneOrMany[TCategory]) {
	for _, category := range ensureArray(categories, false) {
		for _, categoryValue := range ensureArray(category.CategoryValue, false) {
			c.elements.RegisterCategoryValue(string(categoryValue.Id), string(categoryValue.Value))
		}
	}
}

// convertEventDefinitions registers the event definitions of the definitions.
// Events reference them by ID, using eventDefinitionRef.
func (c *converter) convertEventDefinitions(definitions TEventDefinitions) {
	for _, kinded := range definitions.byKind() {
		for _, definition := range ensureArray(kinded.definitions, true) {
			if definition.Id == "" {
				continue
			}
			c.elements.RegisterEventDefinition(newEventDefinition(kinded.kind, definition))
		}
	}
}

func (c *converter) convertGlobalTasks(definitions TDefinitions) {
	c.registerGlobalTasks(definitions.GlobalTask, model.ElementGlobalTask)
	c.registerGlobalTasks(definitions.GlobalBusinessRuleTask, model.ElementGlobalBusinessRuleTask)
	c.registerGlobalTasks(definitions.GlobalManualTask, model.ElementGlobalManualTask)
	c.registerGlobalTasks(definitions.GlobalScriptTask, model.ElementGlobalScriptTask)
	c.registerGlobalTasks(definitions.GlobalUserTask, model.ElementGlobalUserTask)
}

func (c *converter) registerGlobalTasks(globalTasks oneOrMany[TGlobalTask], elementType model.ElementType) {
	for _, globalTask := range ensureArray(globalTasks, false) {
		c.elements.RegisterGlobalTask(string(globalTask.Id), elementType)
	}
}

func newEventDefinition(kind model.EventDefinitionKind, definition TEventDefinition) eventDefinition {
	d := eventDefinition{id: string(definition.Id), kind: kind}

	switch kind {
	case model.EventDefinitionLink:
		for _, source := range ensureArray(definition.Source, false) {
			d.source = append(d.source, string(source))
		}
		d.target = string(definition.Target)
	case model.EventDefinitionTimer:
		d.timer = newTimer(definition)
	}

	return d
}

// newTimer creates a timer from the time date, duration or cycle of a timer event definition.
// A cycle is either an ISO 8601 repeating interval or a cron expression.
func newTimer(definition TEventDefinition) *model.Timer {
	cycle := string(definition.TimeCycle)
	return &model.Timer{
		Date:      string(definition.TimeDate),
		Duration:  string(definition.TimeDuration),
		Cycle:     cycle,
		CycleCron: cycle != "" && gronx.IsValid(cycle),
	}
}
