package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/utils"
)

// ParameterStore 插件参数存储
//
// 用户可以在存储中放置一份插件参数（字符串映射，YAML 格式），
// 启动时读取一次并覆盖 data/state_icons.yaml 中的布局。
// gdataManager 为 nil 时为降级模式：没有覆盖参数。
type ParameterStore struct {
	gdataManager *gdata.Manager
}

// 存储路径常量
const (
	parametersObject   = "plugins"
	parametersProperty = "state_icons"
)

// NewParameterStore 创建插件参数存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewParameterStore(gdataManager *gdata.Manager) *ParameterStore {
	return &ParameterStore{gdataManager: gdataManager}
}

// OpenParameterStore 按应用名打开 gdata 存储
// 打开失败时返回降级模式的存储和错误
func OpenParameterStore(appName string) (*ParameterStore, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return NewParameterStore(nil), err
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewParameterStore(nil), fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return NewParameterStore(manager), nil
}

// Exists 返回存储中是否有插件参数
func (ps *ParameterStore) Exists() bool {
	if ps.gdataManager == nil {
		return false
	}
	return ps.gdataManager.ObjectPropExists(parametersObject, parametersProperty)
}

// Load 读取插件参数
//
// 返回：
//   - map[string]string: 插件参数，没有存储参数时为 nil
//   - error: 读取或反序列化失败
func (ps *ParameterStore) Load() (map[string]string, error) {
	if !ps.Exists() {
		return nil, nil
	}

	data, err := ps.gdataManager.LoadObjectProp(parametersObject, parametersProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load plugin parameters: %w", err)
	}

	params := make(map[string]string)
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plugin parameters: %w", err)
	}
	return params, nil
}

// Save 写入插件参数，供布局预览工具导出使用
// 降级模式下不报错
func (ps *ParameterStore) Save(params map[string]string) error {
	if ps.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal plugin parameters: %w", err)
	}
	if err := ps.gdataManager.SaveObjectProp(parametersObject, parametersProperty, data); err != nil {
		return fmt.Errorf("failed to save plugin parameters: %w", err)
	}

	log.Printf("[ParameterStore] Plugin parameters saved (%d entries)", len(params))
	return nil
}

// ResolveLayout 以 base 为基础应用存储中的插件参数
// 读取失败时记录警告并返回 base
func (ps *ParameterStore) ResolveLayout(base *config.StateIconLayout) *config.StateIconLayout {
	params, err := ps.Load()
	if err != nil {
		log.Printf("[ParameterStore] Warning: %v (using layout file)", err)
		return base
	}
	if params == nil {
		return base
	}

	layout := config.ApplyStateIconParameters(base, params)
	log.Printf("[ParameterStore] Applied %d plugin parameters", len(params))
	return layout
}
