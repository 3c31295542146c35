package emit

// The fixed TypeScript surrounding the generated collections. Emitted
// verbatim on every run: declarations the editor tooling expects to exist
// regardless of what extraction found.

const banner = `// Generated from PyKotor scriptdefs.py
// Do not edit manually - this file is auto-generated

`

const preamble = `export interface NWScriptConstant {
  name: string;
  type: string;
  value: number | string;
  description: string;
  category: string;
}

export interface NWScriptParameter {
  name: string;
  type: string;
  description?: string;
  defaultValue?: string;
}

export interface NWScriptFunction {
  name: string;
  returnType: string;
  parameters: NWScriptParameter[];
  description: string;
  category: string;
}

export interface NWScriptType {
  name: string;
  description?: string;
  size?: number;
}

// KOTOR Data Types
export const KOTOR_TYPES: NWScriptType[] = [
  { name: "void", description: "No return value", size: 0 },
  { name: "int", description: "32-bit signed integer", size: 4 },
  { name: "float", description: "32-bit floating point number", size: 4 },
  { name: "string", description: "Text string", size: 4 },
  { name: "object", description: "Game object reference", size: 4 },
  { name: "vector", description: "3D vector with x, y, z components", size: 12 },
  { name: "location", description: "Position and orientation in an area", size: 4 },
  { name: "event", description: "Game event", size: 4 },
  { name: "effect", description: "Game effect", size: 4 },
  { name: "itemproperty", description: "Item property", size: 4 },
  { name: "talent", description: "Character talent/feat", size: 4 },
  { name: "action", description: "Character action", size: 4 },
];

// Keywords for syntax highlighting and completion
export const KOTOR_KEYWORDS = [
  'if', 'else', 'while', 'for', 'do', 'switch', 'case', 'default', 'break',
  'continue', 'return', 'struct', 'const', '#include'
];

// Control Keywords (from compiler)
export const CONTROL_KEYWORDS = [
  'break', 'case', 'default', 'do', 'else', 'switch', 'while', 'for', 'if', 'return'
];

// Operators (from compiler)
export const OPERATORS = [
  '+', '-', '*', '/', '%', '!', '==', '!=', '>', '<', '>=', '<=',
  '&&', '||', '&', '|', '^', '<<', '>>', '~', '++', '--',
  '+=', '-=', '*=', '/='
];

// Data Type Enums (from PyKotor compiler)
export enum DataTypeEnum {
  VOID = 'void',
  INT = 'int',
  FLOAT = 'float',
  STRING = 'string',
  OBJECT = 'object',
  VECTOR = 'vector',
  LOCATION = 'location',
  EVENT = 'event',
  EFFECT = 'effect',
  ITEMPROPERTY = 'itemproperty',
  TALENT = 'talent',
  ACTION = 'action',
  STRUCT = 'struct'
}

// Geometry Support (from PyKotor geometry)
export interface Vector2 {
  x: number;
  y: number;
}

export interface Vector3 {
  x: number;
  y: number;
  z: number;
}

export interface Vector4 {
  x: number;
  y: number;
  z: number;
  w: number;
}

export interface AxisAngle {
  axis: Vector3;
  angle: number;
}

// Surface Material Types (from PyKotor geometry)
export enum SurfaceMaterial {
  UNDEFINED = 0,
  DIRT = 1,
  OBSCURING = 2,
  GRASS = 3,
  STONE = 4,
  WOOD = 5,
  WATER = 6,
  NON_WALK = 7,
  TRANSPARENT = 8,
  CARPET = 9,
  METAL = 10,
  PUDDLES = 11,
  SWAMP = 12,
  MUD = 13,
  LEAVES = 14,
  LAVA = 15,
  BOTTOMLESS_PIT = 16,
  DEEP_WATER = 17,
  DOOR = 18,
  NON_WALK_GRASS = 19,
  TRIGGER = 30
}

`

const trailer = `// Get all constants by category
export function getConstantsByCategory(category: string): NWScriptConstant[] {
  return KOTOR_CONSTANTS.filter(c => c.category === category);
}

// Get all functions by category
export function getFunctionsByCategory(category: string): NWScriptFunction[] {
  return KOTOR_FUNCTIONS.filter(f => f.category === category);
}

// Find constant by name
export function findConstant(name: string): NWScriptConstant | undefined {
  return KOTOR_CONSTANTS.find(c => c.name === name);
}

// Find function by name
export function findFunction(name: string): NWScriptFunction | undefined {
  return KOTOR_FUNCTIONS.find(f => f.name === name);
}

// Get all available categories
export function getConstantCategories(): string[] {
  return [...new Set(KOTOR_CONSTANTS.map(c => c.category).filter((category): category is string => Boolean(category)))];
}

export function getFunctionCategories(): string[] {
  return [...new Set(KOTOR_FUNCTIONS.map(f => f.category).filter((category): category is string => Boolean(category)))];
}

// Utility functions for geometry types
export function createVector2(x: number, y: number): Vector2 {
  return { x, y };
}

export function createVector3(x: number, y: number, z: number): Vector3 {
  return { x, y, z };
}

export function createVector4(x: number, y: number, z: number, w: number): Vector4 {
  return { x, y, z, w };
}

// Check if surface material is walkable
export function isWalkableSurface(material: SurfaceMaterial): boolean {
  return [
    SurfaceMaterial.DIRT,
    SurfaceMaterial.GRASS,
    SurfaceMaterial.STONE,
    SurfaceMaterial.WOOD,
    SurfaceMaterial.WATER,
    SurfaceMaterial.CARPET,
    SurfaceMaterial.METAL,
    SurfaceMaterial.PUDDLES,
    SurfaceMaterial.SWAMP,
    SurfaceMaterial.MUD,
    SurfaceMaterial.LEAVES,
    SurfaceMaterial.DOOR,
    SurfaceMaterial.TRIGGER
  ].includes(material);
}

// Get data type size (from PyKotor script.py)
export function getDataTypeSize(dataType: DataTypeEnum): number {
  switch (dataType) {
    case DataTypeEnum.VOID:
      return 0;
    case DataTypeEnum.VECTOR:
      return 12;
    case DataTypeEnum.STRUCT:
      throw new Error('Structs are variable size');
    default:
      return 4;
  }
}

// Additional utility functions for NWScript development
export function isValidDataType(type: string): boolean {
  return Object.values(DataTypeEnum).includes(type as DataTypeEnum);
}

export function getDataTypeDescription(type: string): string {
  const descriptions: Record<string, string> = {
    'void': 'No return value',
    'int': '32-bit signed integer',
    'float': '32-bit floating point number',
    'string': 'Text string',
    'object': 'Game object reference',
    'vector': '3D vector with x, y, z components',
    'location': 'Position and orientation in an area',
    'event': 'Game event',
    'effect': 'Game effect',
    'itemproperty': 'Item property',
    'talent': 'Character talent/feat',
    'action': 'Character action',
    'struct': 'Custom data structure'
  };
  return descriptions[type] || 'Unknown data type';
}
`
