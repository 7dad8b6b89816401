package views

import (
	"fmt"
	"strings"
)

type PracticePanelData struct {
	SkillName    string
	Phrase       string
	Phase        string
	Timer        string
	IntervalText string
	ProgressView string
	ProgressPct  int
	Muted        bool
}

type SkillItemData struct {
	ID        string
	Name      string
	Interval  int
	HeroNames []string
	RoleNames []string
	Tags      []string
	IsPreset  bool
	IsActive  bool
}

type SkillsPanelData struct {
	ListView      string
	Items         []SkillItemData
	SelectedID    string
	FilterSummary string
	TotalCount    int
}

type SkillDetailData struct {
	Name         string
	Phrase       string
	Interval     int
	HeroNames    []string
	RoleNames    []string
	Tags         []string
	IsPreset     bool
	MarkdownView string
}

type EditorFieldData struct {
	Label   string
	Value   string
	Focused bool
}

type EditorData struct {
	Active    bool
	Fields    []EditorFieldData
	ErrorText string
}

type SettingsPanelData struct {
	VolumePct    int
	DelaySec     int
	VolumeView   string
	SpeechEngine string
	Muted        bool
}

type ResetPromptData struct {
	Active bool
	Count  int
}

func RenderPracticePanel(data PracticePanelData) string {
	var b strings.Builder
	b.WriteString("practice:\n")
	if data.SkillName != "" {
		b.WriteString(fmt.Sprintf("skill: %s\n", data.SkillName))
	} else {
		b.WriteString("skill: (none selected)\n")
	}
	b.WriteString(fmt.Sprintf("phrase: %s\n", data.Phrase))
	b.WriteString(fmt.Sprintf("phase: %s\n", strings.ToUpper(data.Phase)))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("interval: %s\n", data.IntervalText))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	if data.Muted {
		b.WriteString("audio: muted\n")
	}
	b.WriteString("actions: [space]start/stop [j/k]select skill")
	return strings.TrimSpace(b.String())
}

func RenderSkillsPanel(data SkillsPanelData) string {
	var b strings.Builder
	b.WriteString("skills:\n")
	if data.FilterSummary != "" {
		b.WriteString(fmt.Sprintf("filter: %s (%d/%d shown)\n", data.FilterSummary, len(data.Items), data.TotalCount))
	}
	b.WriteString("actions: [j/k]move [enter]activate [a]add [e]edit [d]delete [J/K]reorder\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("(no skills match)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if item.ID == data.SelectedID {
			cursor = ">"
		}
		marker := " "
		if item.IsActive {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s%s %s (%ds)", cursor, marker, item.Name, item.Interval))
		if len(item.RoleNames) > 0 {
			b.WriteString(" [" + strings.Join(item.RoleNames, ",") + "]")
		}
		if len(item.HeroNames) > 0 {
			b.WriteString(" {" + strings.Join(item.HeroNames, ",") + "}")
		}
		if len(item.Tags) > 0 {
			b.WriteString(" #" + strings.Join(item.Tags, " #"))
		}
		if item.IsPreset {
			b.WriteString(" (preset)")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderSkillDetail(data SkillDetailData) string {
	if strings.TrimSpace(data.Name) == "" {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString(fmt.Sprintf("name: %s\n", data.Name))
	b.WriteString(fmt.Sprintf("phrase: %s\n", data.Phrase))
	b.WriteString(fmt.Sprintf("interval: %ds\n", data.Interval))
	b.WriteString(fmt.Sprintf("roles: %s\n", joinOrDash(data.RoleNames)))
	b.WriteString(fmt.Sprintf("heroes: %s\n", joinOrDash(data.HeroNames)))
	b.WriteString(fmt.Sprintf("tags: %s\n", joinOrDash(data.Tags)))
	if data.IsPreset {
		b.WriteString("origin: preset\n")
	}
	if data.MarkdownView != "" {
		b.WriteString("\nnotes:\n")
		b.WriteString(data.MarkdownView)
	}
	return strings.TrimSpace(b.String())
}

func RenderEditor(data EditorData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("\neditor:\n")
	b.WriteString("keys: [tab]field [enter]save [esc]cancel\n")
	for _, f := range data.Fields {
		cursor := " "
		if f.Focused {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, f.Label, f.Value))
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString(fmt.Sprintf("volume: %s %d%%\n", data.VolumeView, data.VolumePct))
	b.WriteString(fmt.Sprintf("session delay: %ds\n", data.DelaySec))
	b.WriteString(fmt.Sprintf("speech engine: %s\n", data.SpeechEngine))
	if data.Muted {
		b.WriteString("audio: muted\n")
	}
	b.WriteString("actions: [+/-]volume [[/]]delay")
	return strings.TrimSpace(b.String())
}

func RenderResetPrompt(data ResetPromptData) string {
	if !data.Active {
		return ""
	}
	return fmt.Sprintf("\nreset: replace all %d skills with the presets? [y]confirm [n]cancel", data.Count)
}

func RenderToast(message string, exiting bool, hasUndo bool) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	text := message
	if hasUndo {
		text += " | [u]undo"
	}
	if exiting {
		return toastFadeStyle.Render(text)
	}
	return toastStyle.Render(text)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(currentView string, bindings []string, helpView string) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(currentView),
		strings.Join(bindings, "\n"),
		helpView,
	)
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
