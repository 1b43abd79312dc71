// Package pool 提供按创建顺序保存实体的通用集合
//
// 实体池只做三件事：按顺序更新、按顺序绘制、按策略清理。
// 清理在一帧的更新和绘制完成之后统一进行（延迟删除），
// 遍历过程中集合本身不会被修改。
package pool

import "github.com/decker502/fireworks/pkg/render"

// Entity 可逐帧更新和绘制的实体
type Entity interface {
	Update(nowMs int64)
	Draw(s render.Surface)
}

// Expirer 可以报告自身已结束的实体
// 没有实现该接口的实体永远不会被 DropExpired 清理
type Expirer interface {
	Done() bool
}

// Policy 清理策略
type Policy struct {
	dropExpired bool
	cap         int
}

// KeepAll 从不清理，集合只增不减
var KeepAll = Policy{}

// DropExpired 清理 Done() 为 true 的实体
func DropExpired() Policy {
	return Policy{dropExpired: true}
}

// CapOldest 先清理已结束的实体，再丢弃最旧的实体直到不超过 n 个
func CapOldest(n int) Policy {
	return Policy{dropExpired: true, cap: n}
}

// Bounded 策略是否会限制集合增长
func (p Policy) Bounded() bool {
	return p.dropExpired || p.cap > 0
}

// Pool 按创建顺序保存实体
type Pool[T Entity] struct {
	items  []T
	policy Policy
}

// New 创建使用指定清理策略的实体池
func New[T Entity](policy Policy) *Pool[T] {
	return &Pool[T]{policy: policy}
}

// Add 追加实体
func (p *Pool[T]) Add(item T) {
	p.items = append(p.items, item)
}

// Len 当前实体数
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Each 按创建顺序遍历
func (p *Pool[T]) Each(fn func(T)) {
	for _, item := range p.items {
		fn(item)
	}
}

// UpdateAll 按创建顺序更新所有实体
func (p *Pool[T]) UpdateAll(nowMs int64) {
	for _, item := range p.items {
		item.Update(nowMs)
	}
}

// DrawAll 按创建顺序绘制所有实体
func (p *Pool[T]) DrawAll(s render.Surface) {
	for _, item := range p.items {
		item.Draw(s)
	}
}

// Prune 按策略清理，返回移除的实体数
// 保留下来的实体维持原有顺序
func (p *Pool[T]) Prune() int {
	before := len(p.items)

	if p.policy.dropExpired {
		write := 0
		for _, item := range p.items {
			if e, ok := any(item).(Expirer); ok && e.Done() {
				continue
			}
			p.items[write] = item
			write++
		}
		p.truncate(write)
	}

	if p.policy.cap > 0 && len(p.items) > p.policy.cap {
		drop := len(p.items) - p.policy.cap
		n := copy(p.items, p.items[drop:])
		p.truncate(n)
	}

	return before - len(p.items)
}

// truncate 缩短切片并清空尾部引用，让被移除的实体可以被回收
func (p *Pool[T]) truncate(n int) {
	var zero T
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:n]
}

// Clear 移除所有实体
func (p *Pool[T]) Clear() {
	p.truncate(0)
}
