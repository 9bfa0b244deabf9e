package components

// 强化/弱化图标在图标表中的起始编号
// 每个等级占一行（8 个能力值），强化 2 级、弱化 2 级
const (
	IconBuffStart   = 32
	IconDebuffStart = 48
	MaxBuffLevel    = 2
)

// BattlerState 角色身上的一个状态
type BattlerState struct {
	ID        int // 状态编号
	IconIndex int // 图标编号，0 表示无图标
	Priority  int // 显示优先级
}

// BattlerComponent 参战角色
// 状态图标精灵每帧从这里读取最新的图标列表，本组件只由战斗逻辑修改
type BattlerComponent struct {
	ActorID int
	Name    string
	IsActor bool // 我方角色；敌人阵亡后不再显示状态图标
	HP      int
	MaxHP   int

	// States 按优先级降序排列，同优先级按附加顺序
	States []BattlerState
	// Buffs 各能力值的强化等级，正数为强化，负数为弱化
	Buffs [8]int
}

// IsAlive 返回角色是否存活
func (b *BattlerComponent) IsAlive() bool {
	return b.HP > 0
}

// HasState 检查角色是否带有指定状态
func (b *BattlerComponent) HasState(id int) bool {
	for _, s := range b.States {
		if s.ID == id {
			return true
		}
	}
	return false
}

// AddState 附加状态，已有的状态不会重复附加
func (b *BattlerComponent) AddState(state BattlerState) bool {
	if b.HasState(state.ID) {
		return false
	}
	// 插入到第一个优先级更低的状态之前
	pos := len(b.States)
	for i, s := range b.States {
		if s.Priority < state.Priority {
			pos = i
			break
		}
	}
	b.States = append(b.States, BattlerState{})
	copy(b.States[pos+1:], b.States[pos:])
	b.States[pos] = state
	return true
}

// RemoveState 解除状态
func (b *BattlerComponent) RemoveState(id int) bool {
	for i, s := range b.States {
		if s.ID == id {
			b.States = append(b.States[:i], b.States[i+1:]...)
			return true
		}
	}
	return false
}

// AddBuff 提升一级强化（等级上限为 MaxBuffLevel）
func (b *BattlerComponent) AddBuff(param int) {
	if param < 0 || param >= len(b.Buffs) {
		return
	}
	if b.Buffs[param] < MaxBuffLevel {
		b.Buffs[param]++
	}
}

// AddDebuff 提升一级弱化
func (b *BattlerComponent) AddDebuff(param int) {
	if param < 0 || param >= len(b.Buffs) {
		return
	}
	if b.Buffs[param] > -MaxBuffLevel {
		b.Buffs[param]--
	}
}

// RemoveBuff 清除指定能力值的强化/弱化
func (b *BattlerComponent) RemoveBuff(param int) {
	if param < 0 || param >= len(b.Buffs) {
		return
	}
	b.Buffs[param] = 0
}

// BuffIconIndex 计算强化/弱化图标编号，等级为 0 时返回 0
func BuffIconIndex(level, param int) int {
	switch {
	case level > 0:
		return IconBuffStart + (level-1)*8 + param
	case level < 0:
		return IconDebuffStart + (-level-1)*8 + param
	default:
		return 0
	}
}

// AllIcons 返回角色当前的全部图标：先是状态图标，再是强化/弱化图标
// 图标编号为 0 的项不会出现在结果中
func (b *BattlerComponent) AllIcons() []int {
	icons := make([]int, 0, len(b.States)+len(b.Buffs))
	for _, s := range b.States {
		if s.IconIndex > 0 {
			icons = append(icons, s.IconIndex)
		}
	}
	for param, level := range b.Buffs {
		if icon := BuffIconIndex(level, param); icon > 0 {
			icons = append(icons, icon)
		}
	}
	return icons
}
