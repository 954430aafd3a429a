package testsupport

import (
	"fmt"
	"reflect"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/mock"

	"sitesettings/internal/settings"
)

var (
	_ settings.Flat      = (*MockFlat)(nil)
	_ settings.Sectioned = (*MockSectioned)(nil)
	_ settings.Content   = (*MockContent)(nil)
)

// MockFlat is a testify mock implementing settings.Flat.
type MockFlat struct {
	mock.Mock
}

func (m *MockFlat) ConfigurationStatus() string    { return m.Called().String(0) }
func (m *MockFlat) UseHTTPS() bool                 { return m.Called().Bool(0) }
func (m *MockFlat) HideTopLevelNodeFromPath() bool { return m.Called().Bool(0) }
func (m *MockFlat) Path() string                   { return m.Called().String(0) }
func (m *MockFlat) UseDirectoryURLs() bool         { return m.Called().Bool(0) }
func (m *MockFlat) TimeoutMinutes() int            { return m.Called().Int(0) }
func (m *MockFlat) DefaultUILanguage() string      { return m.Called().String(0) }

func (m *MockFlat) LocalTempStorage() settings.TempStorage {
	v, _ := m.Called().Get(0).(settings.TempStorage)
	return v
}

func (m *MockFlat) ReservedPaths() mapset.Set[string] {
	v, _ := m.Called().Get(0).(mapset.Set[string])
	return v
}

func (m *MockFlat) ReservedURLs() mapset.Set[string] {
	v, _ := m.Called().Get(0).(mapset.Set[string])
	return v
}

// MockSectioned is a testify mock implementing settings.Sectioned.
type MockSectioned struct {
	mock.Mock
}

func (m *MockSectioned) Content() settings.Content {
	v, _ := m.Called().Get(0).(settings.Content)
	return v
}

func (m *MockSectioned) Security() settings.Security {
	v, _ := m.Called().Get(0).(settings.Security)
	return v
}

func (m *MockSectioned) RequestHandler() settings.RequestHandler {
	v, _ := m.Called().Get(0).(settings.RequestHandler)
	return v
}

func (m *MockSectioned) Templates() settings.Templates {
	v, _ := m.Called().Get(0).(settings.Templates)
	return v
}

func (m *MockSectioned) Logging() settings.Logging {
	v, _ := m.Called().Get(0).(settings.Logging)
	return v
}

func (m *MockSectioned) ScheduledTasks() settings.ScheduledTasks {
	v, _ := m.Called().Get(0).(settings.ScheduledTasks)
	return v
}

func (m *MockSectioned) Providers() settings.Providers {
	v, _ := m.Called().Get(0).(settings.Providers)
	return v
}

func (m *MockSectioned) WebRouting() settings.WebRouting {
	v, _ := m.Called().Get(0).(settings.WebRouting)
	return v
}

// MockContent is a testify mock implementing settings.Content.
type MockContent struct {
	mock.Mock
}

func (m *MockContent) ForceSafeAliases() bool    { return m.Called().Bool(0) }
func (m *MockContent) LibraryCacheDuration() int { return m.Called().Int(0) }
func (m *MockContent) NotificationEmail() string { return m.Called().String(0) }

func (m *MockContent) ImageAutoFillProperties() []settings.ImageAutoFill {
	v, _ := m.Called().Get(0).([]settings.ImageAutoFill)
	return v
}

func (m *MockContent) ImageFileTypes() []string {
	v, _ := m.Called().Get(0).([]string)
	return v
}

func (m *MockContent) DisallowedUploadFiles() []string {
	v, _ := m.Called().Get(0).([]string)
	return v
}

// StubFlat returns a MockFlat whose named members return the given values.
// Calling a member that was not stubbed fails the test through testify.
func StubFlat(values map[string]any) (*MockFlat, error) {
	m := &MockFlat{}
	if err := stub(&m.Mock, reflect.TypeFor[settings.Flat](), values); err != nil {
		return nil, err
	}
	return m, nil
}

// StubSectioned returns a MockSectioned whose named sections are the given
// values.
func StubSectioned(values map[string]any) (*MockSectioned, error) {
	m := &MockSectioned{}
	if err := stub(&m.Mock, reflect.TypeFor[settings.Sectioned](), values); err != nil {
		return nil, err
	}
	return m, nil
}

// StubContent returns a MockContent whose named members return the given
// values.
func StubContent(values map[string]any) (*MockContent, error) {
	m := &MockContent{}
	if err := stub(&m.Mock, reflect.TypeFor[settings.Content](), values); err != nil {
		return nil, err
	}
	return m, nil
}

func stub(m *mock.Mock, iface reflect.Type, values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		method, ok := iface.MethodByName(name)
		if !ok {
			return fmt.Errorf("stub %s: no member %q", iface.Name(), name)
		}
		out := method.Type.Out(0)
		value := values[name]
		if value == nil {
			switch out.Kind() {
			case reflect.Interface, reflect.Slice, reflect.Map, reflect.Pointer:
			default:
				return fmt.Errorf("stub %s.%s: nil is not a %s", iface.Name(), name, out)
			}
		} else if !reflect.TypeOf(value).AssignableTo(out) {
			return fmt.Errorf("stub %s.%s: %T is not assignable to %s", iface.Name(), name, value, out)
		}
		m.On(name).Return(value).Maybe()
	}
	return nil
}
