package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var urlProviderModes = map[string]struct{}{
	"Auto":       {},
	"AutoLegacy": {},
	"Relative":   {},
	"Absolute":   {},
}

// Validate reports every problem with the sectioned settings at once.
func (c *SectionedConfig) Validate() error {
	var errs *multierror.Error
	errs = multierror.Append(errs, c.validateContent()...)
	errs = multierror.Append(errs, c.validateRequestHandler()...)
	errs = multierror.Append(errs, c.validateTemplates()...)
	errs = multierror.Append(errs, c.validateLogging()...)
	errs = multierror.Append(errs, c.validateScheduledTasks()...)
	errs = multierror.Append(errs, c.validateWebRouting()...)
	return errs.ErrorOrNil()
}

func (c *SectionedConfig) validateContent() []error {
	var errs []error
	if c.ContentSection.CacheDuration < 0 {
		errs = append(errs, errors.New("content.library_cache_duration must not be negative"))
	}
	for i, ext := range c.ContentSection.FileTypes {
		if strings.TrimSpace(ext) == "" {
			errs = append(errs, fmt.Errorf("content.image_file_types[%d] must not be empty", i))
		}
	}
	for i, fill := range c.ContentSection.AutoFillProperties {
		if strings.TrimSpace(fill.Alias) == "" {
			errs = append(errs, fmt.Errorf("content.image_autofill_properties[%d].alias must be set", i))
		}
	}
	return errs
}

func (c *SectionedConfig) validateRequestHandler() []error {
	var errs []error
	for i, r := range c.RequestHandlerSection.CharCollection {
		if r.Char == "" {
			errs = append(errs, fmt.Errorf("request_handler.char_replacements[%d].char must be set", i))
		}
	}
	return errs
}

func (c *SectionedConfig) validateTemplates() []error {
	switch c.TemplatesSection.RenderingEngine {
	case RenderingEngineMVC, RenderingEngineWebForms:
		return nil
	default:
		return []error{fmt.Errorf("templates.default_rendering_engine: unknown value %d", int(c.TemplatesSection.RenderingEngine))}
	}
}

func (c *SectionedConfig) validateLogging() []error {
	var errs []error
	if c.LoggingSection.CleaningMin < 0 {
		errs = append(errs, errors.New("logging.cleaning_minutes must not be negative"))
	}
	if c.LoggingSection.MaxAgeMin < 0 {
		errs = append(errs, errors.New("logging.max_log_age_minutes must not be negative"))
	}
	if c.LoggingSection.AutoClean && c.LoggingSection.CleaningMin == 0 {
		errs = append(errs, errors.New("logging.cleaning_minutes must be positive when logging.auto_clean_logs is true"))
	}
	return errs
}

func (c *SectionedConfig) validateScheduledTasks() []error {
	var errs []error
	seen := make(map[string]struct{}, len(c.ScheduledTasksSection.TaskSet))
	for i, task := range c.ScheduledTasksSection.TaskSet {
		alias := strings.TrimSpace(task.Alias)
		if alias == "" {
			errs = append(errs, fmt.Errorf("scheduled_tasks.tasks[%d].alias must be set", i))
		} else if _, dup := seen[alias]; dup {
			errs = append(errs, fmt.Errorf("scheduled_tasks.tasks[%d].alias %q is duplicated", i, alias))
		} else {
			seen[alias] = struct{}{}
		}
		if task.Interval <= 0 {
			errs = append(errs, fmt.Errorf("scheduled_tasks.tasks[%d].interval must be positive (seconds)", i))
		}
	}
	return errs
}

func (c *SectionedConfig) validateWebRouting() []error {
	if _, ok := urlProviderModes[c.WebRoutingSection.ProviderMode]; !ok {
		return []error{fmt.Errorf("web_routing.url_provider_mode: unsupported value %q", c.WebRoutingSection.ProviderMode)}
	}
	return nil
}
