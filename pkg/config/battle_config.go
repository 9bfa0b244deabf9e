package config

import (
	"fmt"

	"github.com/gonewx/stateicons/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 演示战斗配置
// 定义状态目录、参战角色以及按帧触发的战斗事件，用来驱动状态图标的增减

// 战斗事件类型
const (
	EventAddState    = "addState"
	EventRemoveState = "removeState"
	EventAddBuff     = "addBuff"
	EventAddDebuff   = "addDebuff"
	EventRemoveBuff  = "removeBuff"
	EventDamage      = "damage"
	EventRecover     = "recover"
)

// BuffParamCount 可以附加强化/弱化的能力值数量（最大HP、最大MP、攻击……幸运）
const BuffParamCount = 8

// StateDefinition 状态定义
type StateDefinition struct {
	ID        int    `yaml:"id"`        // 状态编号
	Name      string `yaml:"name"`      // 状态名
	IconIndex int    `yaml:"iconIndex"` // 图标编号，0 表示无图标
	Priority  int    `yaml:"priority"`  // 显示优先级，越大越靠前
}

// ActorDefinition 角色定义
type ActorDefinition struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	HP     int    `yaml:"hp"`
	MaxHP  int    `yaml:"maxHp"`
	States []int  `yaml:"states"` // 开战时附加的状态编号
}

// BattleEvent 按帧触发的战斗事件
type BattleEvent struct {
	Tick   int    `yaml:"tick"`   // 触发帧（从战斗开始计数）
	Actor  int    `yaml:"actor"`  // 目标角色编号
	Action string `yaml:"action"` // 事件类型
	State  int    `yaml:"state"`  // addState/removeState 使用
	Param  int    `yaml:"param"`  // addBuff/addDebuff/removeBuff 使用，0~7
	Value  int    `yaml:"value"`  // damage/recover 使用
}

// BattleDemoConfig 演示战斗配置文件结构
type BattleDemoConfig struct {
	States []StateDefinition `yaml:"states"`
	Actors []ActorDefinition `yaml:"actors"`
	Events []BattleEvent     `yaml:"events"`
	// LoopTicks 大于 0 时，事件时间线在该帧数后从头循环
	LoopTicks int `yaml:"loopTicks"`
}

// LoadBattleDemo 从 YAML 文件加载演示战斗配置
func LoadBattleDemo(filepath string) (*BattleDemoConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read battle demo file %s: %w", filepath, err)
	}

	cfg, err := ParseBattleDemo(data)
	if err != nil {
		return nil, fmt.Errorf("invalid battle demo %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseBattleDemo 解析并校验演示战斗配置
func ParseBattleDemo(data []byte) (*BattleDemoConfig, error) {
	var cfg BattleDemoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateBattleDemo(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetState 按编号查找状态定义
func (c *BattleDemoConfig) GetState(id int) (*StateDefinition, bool) {
	for i := range c.States {
		if c.States[i].ID == id {
			return &c.States[i], true
		}
	}
	return nil, false
}

// validateBattleDemo 验证演示战斗配置的完整性和合法性
func validateBattleDemo(cfg *BattleDemoConfig) error {
	if len(cfg.Actors) == 0 {
		return fmt.Errorf("at least one actor is required")
	}
	if cfg.LoopTicks < 0 {
		return fmt.Errorf("loopTicks cannot be negative, got %d", cfg.LoopTicks)
	}

	stateIDs := make(map[int]bool, len(cfg.States))
	for _, st := range cfg.States {
		if st.ID <= 0 {
			return fmt.Errorf("state %q: id must be positive, got %d", st.Name, st.ID)
		}
		if stateIDs[st.ID] {
			return fmt.Errorf("duplicate state id %d", st.ID)
		}
		if st.IconIndex < 0 {
			return fmt.Errorf("state %d: iconIndex cannot be negative, got %d", st.ID, st.IconIndex)
		}
		stateIDs[st.ID] = true
	}

	actorIDs := make(map[int]bool, len(cfg.Actors))
	for _, a := range cfg.Actors {
		if a.ID <= 0 {
			return fmt.Errorf("actor %q: id must be positive, got %d", a.Name, a.ID)
		}
		if actorIDs[a.ID] {
			return fmt.Errorf("duplicate actor id %d", a.ID)
		}
		if a.MaxHP <= 0 {
			return fmt.Errorf("actor %d: maxHp must be positive, got %d", a.ID, a.MaxHP)
		}
		if a.HP < 0 || a.HP > a.MaxHP {
			return fmt.Errorf("actor %d: hp must be in [0, %d], got %d", a.ID, a.MaxHP, a.HP)
		}
		for _, s := range a.States {
			if !stateIDs[s] {
				return fmt.Errorf("actor %d: unknown state %d", a.ID, s)
			}
		}
		actorIDs[a.ID] = true
	}

	for i, ev := range cfg.Events {
		if ev.Tick < 0 {
			return fmt.Errorf("event %d: tick cannot be negative, got %d", i, ev.Tick)
		}
		if !actorIDs[ev.Actor] {
			return fmt.Errorf("event %d: unknown actor %d", i, ev.Actor)
		}
		switch ev.Action {
		case EventAddState, EventRemoveState:
			if !stateIDs[ev.State] {
				return fmt.Errorf("event %d: unknown state %d", i, ev.State)
			}
		case EventAddBuff, EventAddDebuff, EventRemoveBuff:
			if ev.Param < 0 || ev.Param >= BuffParamCount {
				return fmt.Errorf("event %d: buff param must be in [0, %d), got %d", i, BuffParamCount, ev.Param)
			}
		case EventDamage, EventRecover:
			if ev.Value < 0 {
				return fmt.Errorf("event %d: value cannot be negative, got %d", i, ev.Value)
			}
		default:
			return fmt.Errorf("event %d: unknown action %q", i, ev.Action)
		}
	}

	return nil
}
