package update

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	domainmodel "github.com/sandeepkv93/drilld/internal/model"
	"github.com/sandeepkv93/drilld/internal/views"
)

func (m *Model) openEditor(skill domainmodel.Skill) {
	m.Editor = EditorState{Active: true, SkillID: skill.ID, Field: FieldName}
	m.nameInput.SetValue(skill.Name)
	m.phraseInput.SetValue(skill.TTS)
	m.intervalInput.SetValue(strconv.Itoa(skill.Interval))
	m.descriptionArea.SetValue(skill.Description)
	m.focusEditorField()
}

func (m Model) handleEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Editor = EditorState{}
		m.blurEditorFields()
		m.Status = StatusBar{Text: "edit cancelled", IsError: false}
		return m
	case "tab":
		m.Editor.Field = (m.Editor.Field + 1) % fieldCount
		m.focusEditorField()
		return m
	case "shift+tab":
		m.Editor.Field = (m.Editor.Field + fieldCount - 1) % fieldCount
		m.focusEditorField()
		return m
	case "enter":
		if m.Editor.Field == FieldDescription {
			break
		}
		return m.saveEditor()
	case "ctrl+s":
		return m.saveEditor()
	}

	var cmd tea.Cmd
	switch m.Editor.Field {
	case FieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case FieldPhrase:
		m.phraseInput, cmd = m.phraseInput.Update(msg)
	case FieldInterval:
		m.intervalInput, cmd = m.intervalInput.Update(msg)
	case FieldDescription:
		m.descriptionArea, cmd = m.descriptionArea.Update(msg)
	}
	_ = cmd
	return m
}

func (m Model) saveEditor() Model {
	skill, ok := m.skillByID(m.Editor.SkillID)
	if !ok {
		m.Editor = EditorState{}
		m.blurEditorFields()
		return m
	}

	interval, err := strconv.Atoi(strings.TrimSpace(m.intervalInput.Value()))
	if err != nil || interval < 1 {
		m.Editor.Err = "interval must be a positive number of seconds"
		return m
	}

	skill.Name = strings.TrimSpace(m.nameInput.Value())
	skill.TTS = strings.TrimSpace(m.phraseInput.Value())
	skill.Interval = interval
	skill.Description = m.descriptionArea.Value()
	skill = domainmodel.CreateSkillWithDefaults(skill)

	if err := skill.Validate(); err != nil {
		m.Editor.Err = err.Error()
		return m
	}

	m.Manager.Save(skill)
	m.Cursor = m.indexInVisible(skill.ID)
	m.Editor = EditorState{}
	m.blurEditorFields()
	m.Status = StatusBar{Text: "skill saved", IsError: false}
	return m
}

func (m Model) skillByID(id string) (domainmodel.Skill, bool) {
	if m.Manager == nil {
		return domainmodel.Skill{}, false
	}
	for _, s := range m.Manager.All() {
		if s.ID == id {
			return s, true
		}
	}
	return domainmodel.Skill{}, false
}

func (m *Model) focusEditorField() {
	m.blurEditorFields()
	switch m.Editor.Field {
	case FieldName:
		m.nameInput.Focus()
	case FieldPhrase:
		m.phraseInput.Focus()
	case FieldInterval:
		m.intervalInput.Focus()
	case FieldDescription:
		m.descriptionArea.Focus()
	}
}

func (m *Model) blurEditorFields() {
	m.nameInput.Blur()
	m.phraseInput.Blur()
	m.intervalInput.Blur()
	m.descriptionArea.Blur()
}

func (m Model) renderEditorIfVisible() string {
	if !m.Editor.Active {
		return ""
	}
	return views.RenderEditor(views.EditorData{
		Active: true,
		Fields: []views.EditorFieldData{
			{Label: "name", Value: m.nameInput.View(), Focused: m.Editor.Field == FieldName},
			{Label: "phrase", Value: m.phraseInput.View(), Focused: m.Editor.Field == FieldPhrase},
			{Label: "interval", Value: m.intervalInput.View(), Focused: m.Editor.Field == FieldInterval},
			{Label: "notes", Value: m.descriptionArea.View(), Focused: m.Editor.Field == FieldDescription},
		},
		ErrorText: m.Editor.Err,
	})
}
